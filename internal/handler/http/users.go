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

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing users failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	// requireSelf already validated the id
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		logger.FromRequest(r).Err(err).Int64("userId", id).Msg("user lookup failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid user update payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoFieldsToUpdate):
			utils.WriteJSONError(w, "At least one field (name or email) must be provided for update", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrValidationInvalidEmailFormat):
			utils.WriteJSONError(w, "Invalid email format", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			utils.WriteJSONError(w, msgEmailExists, http.StatusConflict)
			return
		case errors.Is(err, store.ErrUserNotFound):
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("userId", id).Msg("user update failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		logger.FromRequest(r).Err(err).Int64("userId", id).Msg("user deletion failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
