// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMovieNotFound is returned when a lookup, update, or delete
	// targets a movie id that is absent from the collection.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrReviewNotFound is returned when a lookup, update, or delete
	// targets a review id that is absent from the collection.
	ErrReviewNotFound = errors.New("review not found")

	// ErrUserNotFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a create or update would
	// leave two accounts sharing one email.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the PostgreSQL repository when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
