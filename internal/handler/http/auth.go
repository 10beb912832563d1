package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/service"
	"github.com/moviemesh/moviemesh/internal/store"
	"github.com/moviemesh/moviemesh/internal/utils"
	"github.com/moviemesh/moviemesh/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid registration payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNameAndEmailRequired):
			utils.WriteJSONError(w, "Name and email are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrValidationPasswordTooShort):
			utils.WriteJSONError(w, "Password must be at least 4 characters long", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, msgEmailExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid login payload")
		utils.WriteJSONError(w, msgInvalidPayload, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Err(err).Str("email", credentials.Email).Msg("login rejected")
			utils.WriteJSONError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user login")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
