package models

// Review is owned by the reviews service. MovieID is a conceptual foreign
// key into the movies service; no referential integrity is enforced across
// the service boundary beyond the best-effort cascade delete.
type Review struct {
	// ReviewID is the unique identifier of the review.
	ReviewID int64 `json:"id"`

	// MovieID identifies the reviewed movie in the movies service.
	MovieID int64 `json:"movieId"`

	// UserID identifies the author in the users service.
	UserID int64 `json:"userId"`

	// Text is the review body.
	Text string `json:"text"`
}
