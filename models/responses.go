package models

// ErrorResponse is the uniform failure body: every error a service returns
// carries a single human-readable message under the "error" key.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MovieResponse is the body of a successful movie mutation: a short status
// message plus the resulting movie record.
type MovieResponse struct {
	Message string `json:"message"`
	Movie   Movie  `json:"movie"`
}
