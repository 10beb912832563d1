package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrFetchReviewsFailed   = errors.New("failed to fetch reviews")
	ErrCascadeDeleteFailed  = errors.New("failed to delete reviews")
	ErrNoReviewsForMovie    = errors.New("no reviews found for this movie")
	ErrTitleAndYearRequired = errors.New("title and year are required")

	ErrValidationNameAndEmailRequired = errors.New("name and email are required")
	ErrValidationPasswordTooShort     = errors.New("password must be at least 4 characters long")
	ErrValidationNoFieldsToUpdate     = errors.New("at least one field (name or email) must be provided for update")
	ErrValidationInvalidEmailFormat   = errors.New("invalid email format")
)
