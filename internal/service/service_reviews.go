package service

import (
	"context"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/models"
)

// reviewService implements ReviewService on top of the review repository.
type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (r *reviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return r.reviewRepository.GetAllReviews(ctx)
}

func (r *reviewService) GetReviewsByMovieID(ctx context.Context, movieID int64) ([]models.Review, error) {
	return r.reviewRepository.GetReviewsByMovieID(ctx, movieID)
}

func (r *reviewService) GetReview(ctx context.Context, id int64) (models.Review, error) {
	return r.reviewRepository.GetReviewByID(ctx, id)
}

func (r *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	return r.reviewRepository.CreateReview(ctx, review)
}

func (r *reviewService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	return r.reviewRepository.UpdateReview(ctx, review)
}

func (r *reviewService) DeleteReview(ctx context.Context, id int64) error {
	return r.reviewRepository.DeleteReview(ctx, id)
}

// DeleteReviewsByMovieID is the cascade target called by the movies service.
// Removing zero reviews reports ErrNoReviewsForMovie, matching the contract
// the movies orchestrator observes over the wire.
func (r *reviewService) DeleteReviewsByMovieID(ctx context.Context, movieID int64) error {
	removed, err := r.reviewRepository.DeleteReviewsByMovieID(ctx, movieID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNoReviewsForMovie
	}

	logger.FromContext(ctx).Info().Int64("movieId", movieID).Int64("removed", removed).Msg("reviews removed for movie")
	return nil
}
