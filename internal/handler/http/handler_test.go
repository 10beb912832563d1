package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/mock"
	"github.com/moviemesh/moviemesh/internal/service"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "moviemesh",
	TokenDuration: time.Hour,
}

var testConfig = config.StructuredConfig{App: testAppConfig}

// newMoviesTestRouter builds the movies router on seeded in-memory storage
// and the given reviews adapter mock.
func newMoviesTestRouter(t *testing.T) (*chi.Mux, *mock.MockReviewsAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reviewsAdapter := mock.NewMockReviewsAdapter(ctrl)

	storages := store.NewMovieStorages(logger.Nop())
	services := service.NewMovieServices(storages, reviewsAdapter, testConfig, logger.Nop())

	return NewHandler(services, logger.Nop()).InitMovies(), reviewsAdapter
}

func newReviewsTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	storages := store.NewReviewStorages(logger.Nop())
	services := service.NewReviewServices(storages, testConfig, logger.Nop())

	return NewHandler(services, logger.Nop()).InitReviews()
}

func newUsersTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	storages, err := store.NewUserStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	services := service.NewUserServices(storages, testConfig, logger.Nop())

	return NewHandler(services, logger.Nop()).InitUsers()
}

// bearerFor issues a signed token for the given identity using the shared
// test signing key.
func bearerFor(t *testing.T, user models.User) string {
	t.Helper()

	authService := service.NewAuthService(nil, testAppConfig, logger.Nop())
	token, err := authService.CreateToken(context.Background(), user)
	require.NoError(t, err)

	return "Bearer " + token.SignedString
}

func adminBearer(t *testing.T) string {
	return bearerFor(t, models.User{UserID: 2, Email: "bob@example.com", Role: models.RoleAdmin})
}

func userBearer(t *testing.T) string {
	return bearerFor(t, models.User{UserID: 1, Email: "alice@example.com", Role: models.RoleUser})
}

// doRequest runs req against router and returns the response with its body
// read out.
func doRequest(t *testing.T, router *chi.Mux, method, target, authorization string, body io.Reader) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(raw)
}
