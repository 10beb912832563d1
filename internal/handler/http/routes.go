package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moviemesh/moviemesh/models"
)

// InitMovies builds the router of the movies service. Reads are public; the
// whole write surface is admin-only with the movies wording of the role
// denial.
func (h *Handler) InitMovies() *chi.Mux {
	router := h.newRouter()

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/movies", h.getAllMovies)
		r.Get("/movies/{id}", h.getMovieWithReviews)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth(msgInvalidToken))
		r.Use(h.requireRole(models.RoleAdmin, msgAdminRequired))

		r.Post("/movies", h.createMovie)
		r.Put("/movies/{id}", h.updateMovie)
		r.Patch("/movies/{id}", h.partialUpdateMovie)
		r.Delete("/movies/{id}", h.deleteMovieWithReviews)
	})

	return router
}

// InitReviews builds the router of the reviews service. The listing stays
// public so the movies aggregation can read it anonymously; the bulk delete
// targeted by the movies cascade is admin-only.
func (h *Handler) InitReviews() *chi.Mux {
	router := h.newRouter()

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/reviews", h.getReviews)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth(msgForbiddenInvalidToken))

		r.Get("/reviews/{id}", h.getReview)
		r.Post("/reviews", h.createReview)
		r.Put("/reviews/{id}", h.updateReview)
		r.Delete("/reviews/{id}", h.deleteReview)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin, msgInsufficientPrivileges))
			r.Delete("/reviews", h.deleteReviewsByMovie)
		})
	})

	return router
}

// InitUsers builds the router of the users service. Profile routes are
// self-only; the account listing is admin-only.
func (h *Handler) InitUsers() *chi.Mux {
	router := h.newRouter()

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth(msgInvalidToken))

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin, msgInsufficientPrivileges))
			r.Get("/users", h.getAllUsers)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireSelf())
			r.Get("/users/{id}", h.getUser)
			r.Patch("/users/{id}", h.updateUser)
			r.Delete("/users/{id}", h.deleteUser)
		})
	})

	return router
}

func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	return router
}
