package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/models"
)

func newTestAdapter(t *testing.T, handler http.Handler, timeout time.Duration) (ReviewsAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPReviewsAdapter(config.Adapter{
		ReviewsAddress: srv.URL,
		RequestTimeout: timeout,
	}, logger.Nop())
	require.NoError(t, err)

	return a, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:3002", want: "http://localhost:3002"},
		{name: "missing scheme", raw: "localhost:3002", want: "http://localhost:3002"},
		{name: "trailing slash", raw: "http://localhost:3002/", want: "http://localhost:3002"},
		{name: "empty", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchReviewsByMovie_Success(t *testing.T) {
	want := []models.Review{
		{ReviewID: 1, MovieID: 1, UserID: 2, Text: "Very underrated movie!"},
		{ReviewID: 2, MovieID: 1, UserID: 1, Text: "Best animated movie ever."},
	}

	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/reviews", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("movieId"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}), time.Second)

	got, err := a.FetchReviewsByMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchReviewsByMovie_RemoteRejected(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}), time.Second)

	_, err := a.FetchReviewsByMovie(context.Background(), 1)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusInternalServerError, rejected.StatusCode)
	assert.Equal(t, `{"error":"boom"}`, rejected.Body)
}

func TestFetchReviewsByMovie_Timeout(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}), 20*time.Millisecond)

	_, err := a.FetchReviewsByMovie(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRemoteUnreachable)
}

func TestFetchReviewsByMovie_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a, err := NewHTTPReviewsAdapter(config.Adapter{
		ReviewsAddress: addr,
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.FetchReviewsByMovie(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRemoteUnreachable)
}

func TestDeleteReviewsByMovie_ForwardsAuthorization(t *testing.T) {
	const bearer = "Bearer some.jwt.token"

	var calls int
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/reviews", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("movieId"))
		assert.Equal(t, bearer, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusNoContent)
	}), time.Second)

	err := a.DeleteReviewsByMovie(context.Background(), 2, bearer)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "delete is attempted exactly once")
}

func TestDeleteReviewsByMovie_RemoteRejected(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Forbidden: admin role required"}`))
	}), time.Second)

	err := a.DeleteReviewsByMovie(context.Background(), 2, "Bearer stale")

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusForbidden, rejected.StatusCode)
	assert.False(t, errors.Is(err, ErrRemoteUnreachable))
}
