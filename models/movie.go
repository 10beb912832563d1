package models

// Movie is a catalog entry owned by the movies service.
type Movie struct {
	// MovieID is the unique identifier of the movie.
	MovieID int64 `json:"id"`

	// Title is the movie title. Required on creation.
	Title string `json:"title"`

	// Year is the release year. Required on creation.
	Year int `json:"year"`

	// Director is optional.
	Director string `json:"director,omitempty"`
}

// MovieUpdate describes a partial update of a movie. Nil fields are left
// untouched. Both PUT and PATCH routes funnel into this shape: the original
// API only ever updates the fields the caller provided.
type MovieUpdate struct {
	Title    *string `json:"title,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Director *string `json:"director,omitempty"`
}

// MovieWithReviews is the aggregated read model: a movie joined with its
// reviews fetched from the reviews service. The aggregation is all or
// nothing: a partially populated value is never returned to a client.
type MovieWithReviews struct {
	Movie
	Reviews []Review `json:"reviews"`
}
