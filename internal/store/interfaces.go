// Package store provides the repository abstractions behind which every
// record collection of the mesh lives, plus their in-memory and PostgreSQL
// implementations. Handlers and services never touch a backing collection
// directly; the backing store is an implementation detail behind these
// interfaces.
package store

import (
	"context"

	"github.com/moviemesh/moviemesh/models"
)

// MovieRepository is the data-access contract of the movies service.
type MovieRepository interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// ReviewRepository is the data-access contract of the reviews service.
type ReviewRepository interface {
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByMovieID(ctx context.Context, movieID int64) ([]models.Review, error)
	GetReviewByID(ctx context.Context, id int64) (models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error

	// DeleteReviewsByMovieID removes every review of the given movie and
	// returns the number of removed records. Zero removals is not an
	// error at this layer; the service decides how to surface it.
	DeleteReviewsByMovieID(ctx context.Context, movieID int64) (int64, error)
}

// UserRepository is the data-access contract of the users service.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
