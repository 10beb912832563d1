package store

import (
	"context"
	"sort"
	"sync"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/models"
)

// memoryReviewRepository is the map-backed implementation of
// [ReviewRepository].
type memoryReviewRepository struct {
	logger *logger.Logger

	mu      sync.RWMutex
	reviews map[int64]models.Review
	nextID  int64
}

// NewMemoryReviewRepository constructs a [ReviewRepository] holding the
// given seed records.
func NewMemoryReviewRepository(logger *logger.Logger, seed ...models.Review) ReviewRepository {
	logger.Debug().Int("seed", len(seed)).Msg("creating in-memory review repository")

	r := &memoryReviewRepository{
		logger:  logger,
		reviews: make(map[int64]models.Review, len(seed)),
		nextID:  1,
	}
	for _, review := range seed {
		r.reviews[review.ReviewID] = review
		if review.ReviewID >= r.nextID {
			r.nextID = review.ReviewID + 1
		}
	}

	return r
}

func (r *memoryReviewRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.Review) bool { return true }), nil
}

func (r *memoryReviewRepository) GetReviewsByMovieID(ctx context.Context, movieID int64) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(review models.Review) bool { return review.MovieID == movieID }), nil
}

func (r *memoryReviewRepository) GetReviewByID(ctx context.Context, id int64) (models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return models.Review{}, ErrReviewNotFound
	}

	return review, nil
}

func (r *memoryReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ReviewID = r.nextID
	r.nextID++
	r.reviews[review.ReviewID] = review

	return review, nil
}

func (r *memoryReviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ReviewID]; !ok {
		return models.Review{}, ErrReviewNotFound
	}
	r.reviews[review.ReviewID] = review

	return review, nil
}

func (r *memoryReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return ErrReviewNotFound
	}
	delete(r.reviews, id)

	return nil
}

func (r *memoryReviewRepository) DeleteReviewsByMovieID(ctx context.Context, movieID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, review := range r.reviews {
		if review.MovieID == movieID {
			delete(r.reviews, id)
			removed++
		}
	}

	return removed, nil
}

// collect returns the reviews matching the predicate, ordered by id.
// Callers must hold at least the read lock.
func (r *memoryReviewRepository) collect(match func(models.Review) bool) []models.Review {
	reviews := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if match(review) {
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ReviewID < reviews[j].ReviewID })

	return reviews
}
