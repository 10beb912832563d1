package http

import (
	"context"
	"net/http"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/utils"
)

// auth returns an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token via [utils.ParseBearerToken], validates it via
// [service.AuthService.ParseToken], and on success
// stores the authenticated identity in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler. The identity
// is attached exactly once and never mutated downstream.
//
// Rejections:
//   - The "Authorization" header is absent or carries no token →
//     401 "Access denied. Token missing.".
//   - The token is expired, tampered with, or otherwise invalid →
//     403 with invalidTokenMessage. The services word this message
//     differently, hence the parameter.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(invalidTokenMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Err(err).Send()
				utils.WriteJSONError(w, msgTokenMissing, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSONError(w, invalidTokenMessage, http.StatusForbidden)
				return
			}

			// Store the authenticated identity in the context so that
			// downstream handlers can retrieve it without re-parsing the token.
			ctx = context.WithValue(ctx, utils.IdentityCtxKey, token.Identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
