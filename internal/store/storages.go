package store

import (
	"context"

	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/logger"
)

// Storages bundles the repositories a service binary wires into its service
// layer. Each binary only populates the repositories it owns.
type Storages struct {
	MovieRepository  MovieRepository
	ReviewRepository ReviewRepository
	UserRepository   UserRepository
}

// NewMovieStorages returns the storages of the movies service, seeded with
// the initial catalog.
func NewMovieStorages(log *logger.Logger) *Storages {
	return &Storages{
		MovieRepository: NewMemoryMovieRepository(log, SeedMovies()...),
	}
}

// NewReviewStorages returns the storages of the reviews service, seeded with
// the initial review set.
func NewReviewStorages(log *logger.Logger) *Storages {
	return &Storages{
		ReviewRepository: NewMemoryReviewRepository(log, SeedReviews()...),
	}
}

// NewUserStorages returns the storages of the users service. When a database
// DSN is configured the accounts live in PostgreSQL; otherwise an in-memory
// repository seeded with the initial accounts is used.
func NewUserStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		seed, err := SeedUsers()
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewMemoryUserRepository(log, seed...),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
