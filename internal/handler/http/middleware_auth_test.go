package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuth_MissingToken(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	tests := []struct {
		name          string
		authorization string
	}{
		{name: "no header"},
		{name: "scheme only", authorization: "Bearer"},
		{name: "empty token", authorization: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, router, http.MethodPost, "/movies", tt.authorization, nil)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.JSONEq(t, `{"error":"Access denied. Token missing."}`, body)
		})
	}
}

func TestAuth_InvalidToken_MoviesWording(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodPost, "/movies", "Bearer not.a.jwt", nil)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid token."}`, body)
}

func TestAuth_InvalidToken_ReviewsWording(t *testing.T) {
	router := newReviewsTestRouter(t)

	resp, body := doRequest(t, router, http.MethodGet, "/reviews/1", "Bearer not.a.jwt", nil)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Access forbidden: Invalid token."}`, body)
}

func TestAuth_ValidTokenPassesThrough(t *testing.T) {
	router := newReviewsTestRouter(t)

	resp, _ := doRequest(t, router, http.MethodGet, "/reviews/1", userBearer(t), nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
