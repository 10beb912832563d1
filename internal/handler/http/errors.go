// SPDX-License-Identifier: Apache-2.0

package http

// Client-facing error messages. The auth and role messages differ in wording
// between the services and are wired per router in routes.go; the rest are
// shared.
const (
	msgTokenMissing           = "Access denied. Token missing."
	msgInvalidToken           = "Invalid token."
	msgForbiddenInvalidToken  = "Access forbidden: Invalid token."
	msgAdminRequired          = "Forbidden: admin role required"
	msgInsufficientPrivileges = "Access forbidden: insufficient privileges."

	msgInvalidPayload = "Invalid request payload"

	msgMovieNotFound      = "Movie not found"
	msgTitleYearRequired  = "Title and year are required"
	msgFetchReviewsFailed = "Failed to fetch reviews"

	msgReviewNotFound    = "Review not found"
	msgMovieIDNotANumber = "movieId must be a number"
	msgMovieIDNotValid   = "movieId must be a valid number"
	msgNoReviewsForMovie = "No reviews found for this movie"

	msgUserNotFound       = "User not found"
	msgInvalidUserID      = "Invalid user ID"
	msgInvalidCredentials = "Invalid credentials"
	msgEmailExists        = "Email already exists"
)
