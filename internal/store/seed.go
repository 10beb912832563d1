package store

import (
	"fmt"

	"github.com/moviemesh/moviemesh/internal/utils"
	"github.com/moviemesh/moviemesh/models"
)

// Canned records each service starts with when no database is configured.

// SeedMovies returns the initial movie catalog.
func SeedMovies() []models.Movie {
	return []models.Movie{
		{MovieID: 1, Title: "Treasure Planet", Year: 2002},
		{MovieID: 2, Title: "The Matrix", Year: 1999},
	}
}

// SeedReviews returns the initial review set.
func SeedReviews() []models.Review {
	return []models.Review{
		{ReviewID: 1, MovieID: 1, UserID: 2, Text: "Very underrated movie!"},
		{ReviewID: 2, MovieID: 1, UserID: 1, Text: "Best animated movie ever."},
		{ReviewID: 3, MovieID: 2, UserID: 1, Text: "Classic sci-fi."},
	}
}

// SeedUsers returns the two initial accounts, Alice (user) and Bob (admin),
// with their passwords bcrypt-hashed at startup.
func SeedUsers() ([]models.User, error) {
	users := []models.User{
		{UserID: 1, Name: "Alice", Email: "alice@example.com", Role: models.RoleUser},
		{UserID: 2, Name: "Bob", Email: "bob@example.com", Role: models.RoleAdmin},
	}

	for i := range users {
		hash, err := utils.HashPassword("1234")
		if err != nil {
			return nil, fmt.Errorf("error hashing seed password: %w", err)
		}
		users[i].PasswordHash = hash
	}

	return users, nil
}
