// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/service"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/internal/utils"
	"github.com/moviemesh/moviemesh/models"
)

func (h *Handler) getAllMovies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	movies, err := h.services.MovieService.GetAllMovies(r.Context())
	if err != nil {
		log.Err(err).Msg("listing movies failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

// getMovieWithReviews serves the aggregated read: the local movie plus its
// reviews fetched from the reviews service. An unparseable id behaves like a
// miss, and no partial payload leaves this handler when the remote fetch
// fails.
func (h *Handler) getMovieWithReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgMovieNotFound, http.StatusNotFound)
		return
	}

	movie, err := h.services.MovieService.GetMovieWithReviews(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteJSONError(w, msgMovieNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrFetchReviewsFailed):
			log.Err(err).Int64("movieId", id).Msg("aggregated read failed")
			utils.WriteJSONError(w, msgFetchReviewsFailed, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Int64("movieId", id).Msg("unexpected error during aggregated read")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		log.Err(err).Msg("invalid movie payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}

	created, err := h.services.MovieService.CreateMovie(r.Context(), movie)
	if err != nil {
		if errors.Is(err, service.ErrTitleAndYearRequired) {
			utils.WriteJSONError(w, msgTitleYearRequired, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("movie creation failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MovieResponse{Message: "Movie created", Movie: created}, http.StatusCreated)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	h.applyMovieUpdate(w, r, "Movie updated")
}

func (h *Handler) partialUpdateMovie(w http.ResponseWriter, r *http.Request) {
	h.applyMovieUpdate(w, r, "Movie partially updated")
}

// applyMovieUpdate backs both PUT and PATCH: the two verbs share their
// field-if-present semantics and differ only in the success message.
func (h *Handler) applyMovieUpdate(w http.ResponseWriter, r *http.Request, successMessage string) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgMovieNotFound, http.StatusNotFound)
		return
	}

	var update models.MovieUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid movie update payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}

	updated, err := h.services.MovieService.UpdateMovie(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			utils.WriteJSONError(w, msgMovieNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("movieId", id).Msg("movie update failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MovieResponse{Message: successMessage, Movie: updated}, http.StatusOK)
}

// deleteMovieWithReviews serves the cascading delete. A miss stops the
// cascade before any remote call; a remote failure after the local delete is
// reported with the failure detail while the local delete stands.
func (h *Handler) deleteMovieWithReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgMovieNotFound, http.StatusNotFound)
		return
	}

	err = h.services.MovieService.DeleteMovieWithReviews(r.Context(), id, r.Header.Get("Authorization"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMovieNotFound):
			utils.WriteJSONError(w, msgMovieNotFound, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrCascadeDeleteFailed):
			log.Err(err).Int64("movieId", id).Msg("cascading delete failed")
			utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
			return
		default:
			log.Err(err).Int64("movieId", id).Msg("unexpected error during cascading delete")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
