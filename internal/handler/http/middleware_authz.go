package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/utils"
)

// Authorization policies. Each one is a pure predicate over the identity the
// auth middleware attached to the request context, so policies compose
// conjunctively as chi middlewares: every policy in the chain must pass.
// They must always run after auth; an absent identity is rejected rather
// than treated as a server bug.

// requireRole rejects requests whose identity does not carry the given role
// with 403 and denyMessage. The services word this message differently,
// hence the parameter.
func (h *Handler) requireRole(role, denyMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok || identity.Role != role {
				logger.FromRequest(r).Error().
					Str("required_role", role).
					Str("role", identity.Role).
					Msg("role check failed")
				utils.WriteJSONError(w, denyMessage, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requireSelf rejects requests whose {id} path parameter does not match the
// identity's subject id. A non-numeric path id is a client error.
func (h *Handler) requireSelf() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				utils.WriteJSONError(w, msgInvalidUserID, http.StatusBadRequest)
				return
			}

			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok || identity.UserID != id {
				logger.FromRequest(r).Error().
					Int64("path_id", id).
					Int64("subject_id", identity.UserID).
					Msg("self check failed")
				utils.WriteJSONError(w, msgInsufficientPrivileges, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
