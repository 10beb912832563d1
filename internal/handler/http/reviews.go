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

// getReviews lists reviews, optionally filtered by the movieId query
// parameter. This is the endpoint the movies service aggregation reads.
func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var (
		reviews []models.Review
		err     error
	)

	if rawMovieID := r.URL.Query().Get("movieId"); rawMovieID != "" {
		movieID, parseErr := strconv.ParseInt(rawMovieID, 10, 64)
		if parseErr != nil {
			utils.WriteJSONError(w, msgMovieIDNotANumber, http.StatusBadRequest)
			return
		}
		reviews, err = h.services.ReviewService.GetReviewsByMovieID(ctx, movieID)
	} else {
		reviews, err = h.services.ReviewService.GetAllReviews(ctx)
	}

	if err != nil {
		log.Err(err).Msg("listing reviews failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgReviewNotFound, http.StatusNotFound)
		return
	}

	review, err := h.services.ReviewService.GetReview(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			utils.WriteJSONError(w, msgReviewNotFound, http.StatusNotFound)
			return
		}
		logger.FromRequest(r).Err(err).Int64("reviewId", id).Msg("review lookup failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		log.Err(err).Msg("invalid review payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}

	created, err := h.services.ReviewService.CreateReview(r.Context(), review)
	if err != nil {
		log.Err(err).Msg("review creation failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateReview replaces the review's fields with the request body, keeping
// the path id.
func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgReviewNotFound, http.StatusNotFound)
		return
	}

	var review models.Review
	if err = json.NewDecoder(r.Body).Decode(&review); err != nil {
		log.Err(err).Msg("invalid review update payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}
	review.ReviewID = id

	updated, err := h.services.ReviewService.UpdateReview(r.Context(), review)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			utils.WriteJSONError(w, msgReviewNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("reviewId", id).Msg("review update failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgReviewNotFound, http.StatusNotFound)
		return
	}

	if err = h.services.ReviewService.DeleteReview(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			utils.WriteJSONError(w, msgReviewNotFound, http.StatusNotFound)
			return
		}
		logger.FromRequest(r).Err(err).Int64("reviewId", id).Msg("review deletion failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteReviewsByMovie is the bulk delete the movies service cascade calls.
func (h *Handler) deleteReviewsByMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	movieID, err := strconv.ParseInt(r.URL.Query().Get("movieId"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, msgMovieIDNotValid, http.StatusBadRequest)
		return
	}

	if err = h.services.ReviewService.DeleteReviewsByMovieID(r.Context(), movieID); err != nil {
		if errors.Is(err, service.ErrNoReviewsForMovie) {
			utils.WriteJSONError(w, msgNoReviewsForMovie, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("movieId", movieID).Msg("bulk review deletion failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
