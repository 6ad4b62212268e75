package http

import (
	"context"
	"net/http"

	"github.com/mlevkov/teamdesk/internal/utils"
)

// Request headers carrying the session credentials on authenticated routes.
const (
	userHeader  = "user"
	tokenHeader = "token"
)

// session is an HTTP middleware that enforces token-based authentication.
//
// It reads the "user" and "token" request headers, resolves them through the
// session validator, and on success stores the authenticated user in the
// request context under [utils.RequesterCtxKey] before delegating to the
// next handler.
//
// Rejections are written as error envelopes with HTTP 403:
//   - no token header supplied;
//   - the username does not resolve to an account;
//   - no stored session matches the (user, token) pair.
//
// A successful validation also bumps the session's last-used timestamp as a
// side effect of the validator.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		username := r.Header.Get(userHeader)
		token := r.Header.Get(tokenHeader)

		caller, err := h.services.SessionService.Validate(ctx, username, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		// Store the resolved user so that downstream handlers can apply the
		// admin gate and ownership filters without a second lookup.
		ctx = context.WithValue(ctx, utils.RequesterCtxKey, caller)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
