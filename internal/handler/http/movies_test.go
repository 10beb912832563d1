// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moviemesh/moviemesh/internal/adapter"
	"github.com/moviemesh/moviemesh/models"
)

func TestGetAllMovies_Public(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodGet, "/movies", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"id":1,"title":"Treasure Planet","year":2002},
		{"id":2,"title":"The Matrix","year":1999}
	]`, body)
}

func TestGetMovieWithReviews(t *testing.T) {
	router, reviewsAdapter := newMoviesTestRouter(t)

	reviewsAdapter.EXPECT().FetchReviewsByMovie(gomock.Any(), int64(1)).Return([]models.Review{
		{ReviewID: 1, MovieID: 1, UserID: 2, Text: "Very underrated movie!"},
	}, nil)

	resp, body := doRequest(t, router, http.MethodGet, "/movies/1", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"id":1,"title":"Treasure Planet","year":2002,
		"reviews":[{"id":1,"movieId":1,"userId":2,"text":"Very underrated movie!"}]
	}`, body)
}

func TestGetMovieWithReviews_NotFound(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	// no adapter expectation: the remote is not consulted for a missing movie
	resp, body := doRequest(t, router, http.MethodGet, "/movies/99", "", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Movie not found"}`, body)
}

func TestGetMovieWithReviews_RemoteFailure(t *testing.T) {
	router, reviewsAdapter := newMoviesTestRouter(t)

	reviewsAdapter.EXPECT().
		FetchReviewsByMovie(gomock.Any(), int64(1)).
		Return(nil, adapter.ErrRemoteUnreachable)

	resp, body := doRequest(t, router, http.MethodGet, "/movies/1", "", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Failed to fetch reviews"}`, body)
}

func TestCreateMovie(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodPost, "/movies", adminBearer(t),
		strings.NewReader(`{"title":"Inception","year":2010,"director":"Christopher Nolan"}`))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{
		"message":"Movie created",
		"movie":{"id":3,"title":"Inception","year":2010,"director":"Christopher Nolan"}
	}`, body)
}

func TestCreateMovie_Validation(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodPost, "/movies", adminBearer(t),
		strings.NewReader(`{"title":"No Year"}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Title and year are required"}`, body)
}

func TestCreateMovie_NonAdminForbidden(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodPost, "/movies", userBearer(t),
		strings.NewReader(`{"title":"Inception","year":2010}`))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Forbidden: admin role required"}`, body)
}

func TestUpdateMovie_PutAndPatch(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodPut, "/movies/2", adminBearer(t),
		strings.NewReader(`{"title":"The Matrix Reloaded","year":2003}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"message":"Movie updated",
		"movie":{"id":2,"title":"The Matrix Reloaded","year":2003}
	}`, body)

	resp, body = doRequest(t, router, http.MethodPatch, "/movies/2", adminBearer(t),
		strings.NewReader(`{"year":1999}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var patched models.MovieResponse
	require.NoError(t, json.Unmarshal([]byte(body), &patched))
	assert.Equal(t, "Movie partially updated", patched.Message)
	assert.Equal(t, "The Matrix Reloaded", patched.Movie.Title, "untouched fields survive a patch")
	assert.Equal(t, 1999, patched.Movie.Year)
}

func TestPatchMovie_InvalidPayload(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodPatch, "/movies/1", adminBearer(t),
		strings.NewReader(`{"year":`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid request payload"}`, body)
}

func TestDeleteMovie_Cascade(t *testing.T) {
	router, reviewsAdapter := newMoviesTestRouter(t)
	bearer := adminBearer(t)

	reviewsAdapter.EXPECT().
		DeleteReviewsByMovie(gomock.Any(), int64(1), bearer).
		Return(nil).
		Times(1)

	resp, body := doRequest(t, router, http.MethodDelete, "/movies/1", bearer, nil)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)

	// the movie is gone locally
	resp, _ = doRequest(t, router, http.MethodGet, "/movies/1", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteMovie_NotFoundStopsCascade(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	// no adapter expectation: the remote delete must not be attempted
	resp, body := doRequest(t, router, http.MethodDelete, "/movies/99", adminBearer(t), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Movie not found"}`, body)
}

func TestDeleteMovie_RemoteFailure(t *testing.T) {
	router, reviewsAdapter := newMoviesTestRouter(t)
	bearer := adminBearer(t)

	reviewsAdapter.EXPECT().
		DeleteReviewsByMovie(gomock.Any(), int64(1), bearer).
		Return(&adapter.RejectedError{StatusCode: 404, Body: `{"error":"No reviews found for this movie"}`}).
		Times(1)

	resp, body := doRequest(t, router, http.MethodDelete, "/movies/1", bearer, nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "failed to delete reviews")

	// the local delete is not rolled back
	resp, _ = doRequest(t, router, http.MethodGet, "/movies/1", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteMovie_NonAdminForbidden(t *testing.T) {
	router, _ := newMoviesTestRouter(t)

	resp, body := doRequest(t, router, http.MethodDelete, "/movies/1", userBearer(t), nil)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Forbidden: admin role required"}`, body)
}
