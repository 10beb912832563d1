// Package service holds the business logic of the three mesh services.
// Handlers translate HTTP into these calls; repositories and the reviews
// adapter are injected so every rule here is testable in isolation.
package service

import (
	"context"

	"github.com/moviemesh/moviemesh/models"
)

// AuthService issues and verifies the JWT tokens shared by all services.
// Registration and login are only exercised by the users binary; the movies
// and reviews binaries use it solely for token parsing.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MovieService covers the movie catalog plus the two cross-service
// operations: the aggregated read and the cascading delete.
type MovieService interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)

	// GetMovieWithReviews returns the movie together with its reviews
	// fetched from the reviews service. The read is all-or-nothing: if the
	// reviews cannot be fetched no partial movie data is returned.
	GetMovieWithReviews(ctx context.Context, id int64) (models.MovieWithReviews, error)

	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	UpdateMovie(ctx context.Context, id int64, update models.MovieUpdate) (models.Movie, error)

	// DeleteMovieWithReviews removes the movie locally and then asks the
	// reviews service to drop its reviews, forwarding the caller's
	// Authorization header value. The local delete is not rolled back when
	// the remote call fails.
	DeleteMovieWithReviews(ctx context.Context, id int64, authorization string) error
}

// ReviewService covers review CRUD plus the bulk delete targeted by the
// movies service cascade.
type ReviewService interface {
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByMovieID(ctx context.Context, movieID int64) ([]models.Review, error)
	GetReview(ctx context.Context, id int64) (models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
	DeleteReviewsByMovieID(ctx context.Context, movieID int64) error
}

// UserService covers account listing and profile management.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
