package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/models"
)

func TestMemoryReviewRepository_GetReviewsByMovieID(t *testing.T) {
	repo := NewMemoryReviewRepository(logger.Nop(), SeedReviews()...)

	reviews, err := repo.GetReviewsByMovieID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, int64(1), reviews[0].ReviewID)
	assert.Equal(t, int64(2), reviews[1].ReviewID)

	reviews, err = repo.GetReviewsByMovieID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestMemoryReviewRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryReviewRepository(logger.Nop(), SeedReviews()...)

	created, err := repo.CreateReview(context.Background(), models.Review{MovieID: 2, UserID: 2, Text: "Blew my mind."})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ReviewID)

	found, err := repo.GetReviewByID(context.Background(), created.ReviewID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMemoryReviewRepository_UpdateNotFound(t *testing.T) {
	repo := NewMemoryReviewRepository(logger.Nop())

	_, err := repo.UpdateReview(context.Background(), models.Review{ReviewID: 7, Text: "ghost"})
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestMemoryReviewRepository_DeleteReviewsByMovieID(t *testing.T) {
	repo := NewMemoryReviewRepository(logger.Nop(), SeedReviews()...)

	removed, err := repo.DeleteReviewsByMovieID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all, err := repo.GetAllReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(3), all[0].ReviewID)

	// a movie with no reviews removes nothing
	removed, err = repo.DeleteReviewsByMovieID(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
