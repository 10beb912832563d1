package service

import (
	"github.com/moviemesh/moviemesh/internal/adapter"
	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/store"
)

// Services bundles the business-logic implementations a binary wires into
// its handler. Every binary carries the AuthService (for token parsing);
// the domain services are populated per binary.
type Services struct {
	AuthService   AuthService
	MovieService  MovieService
	ReviewService ReviewService
	UserService   UserService
}

// NewMovieServices wires the services of the movies binary.
func NewMovieServices(storages *store.Storages, reviewsAdapter adapter.ReviewsAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(nil, cfg.App, logger),
		MovieService: NewMovieService(storages.MovieRepository, reviewsAdapter, logger),
	}
}

// NewReviewServices wires the services of the reviews binary.
func NewReviewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(nil, cfg.App, logger),
		ReviewService: NewReviewService(storages.ReviewRepository, logger),
	}
}

// NewUserServices wires the services of the users binary.
func NewUserServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
