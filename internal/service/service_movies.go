// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/moviemesh/moviemesh/internal/adapter"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/models"
)

// movieService implements MovieService on top of the local movie repository
// and the reviews service adapter.
type movieService struct {
	movieRepository store.MovieRepository
	reviews         adapter.ReviewsAdapter
	logger          *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, reviews adapter.ReviewsAdapter, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		reviews:         reviews,
		logger:          logger,
	}
}

func (m *movieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return m.movieRepository.GetAllMovies(ctx)
}

// GetMovieWithReviews performs the aggregated read. The local lookup runs
// first so a missing movie is reported without touching the remote service.
// Any remote failure, rejection or outage alike, surfaces as
// ErrFetchReviewsFailed and no partial movie data is returned.
func (m *movieService) GetMovieWithReviews(ctx context.Context, id int64) (models.MovieWithReviews, error) {
	log := logger.FromContext(ctx)

	movie, err := m.movieRepository.GetMovieByID(ctx, id)
	if err != nil {
		return models.MovieWithReviews{}, err
	}

	reviews, err := m.reviews.FetchReviewsByMovie(ctx, id)
	if err != nil {
		log.Err(err).Int64("movieId", id).Msg("fetching reviews for movie failed")
		return models.MovieWithReviews{}, fmt.Errorf("%w: %w", ErrFetchReviewsFailed, err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return models.MovieWithReviews{Movie: movie, Reviews: reviews}, nil
}

func (m *movieService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if movie.Title == "" || movie.Year == 0 {
		return models.Movie{}, ErrTitleAndYearRequired
	}

	return m.movieRepository.CreateMovie(ctx, movie)
}

// UpdateMovie overwrites the fields present in update and keeps the rest.
func (m *movieService) UpdateMovie(ctx context.Context, id int64, update models.MovieUpdate) (models.Movie, error) {
	movie, err := m.movieRepository.GetMovieByID(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}

	if update.Title != nil {
		movie.Title = *update.Title
	}
	if update.Year != nil {
		movie.Year = *update.Year
	}
	if update.Director != nil {
		movie.Director = *update.Director
	}

	return m.movieRepository.UpdateMovie(ctx, movie)
}

// DeleteMovieWithReviews performs the cascading delete. The local delete
// commits first; the remote bulk delete is then attempted exactly once with
// the caller's Authorization header value forwarded. A remote failure leaves
// the local delete in place and surfaces as ErrCascadeDeleteFailed.
func (m *movieService) DeleteMovieWithReviews(ctx context.Context, id int64, authorization string) error {
	log := logger.FromContext(ctx)

	if _, err := m.movieRepository.GetMovieByID(ctx, id); err != nil {
		return err
	}

	if err := m.movieRepository.DeleteMovie(ctx, id); err != nil {
		return err
	}

	if err := m.reviews.DeleteReviewsByMovie(ctx, id, authorization); err != nil {
		log.Err(err).Int64("movieId", id).Msg("deleting reviews for movie failed, movie already removed locally")
		return fmt.Errorf("%w: %w", ErrCascadeDeleteFailed, err)
	}

	return nil
}
