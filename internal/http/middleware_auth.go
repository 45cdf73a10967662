package http

import (
	"errors"
	"net/http"

	"github.com/padualabs/userapi/internal/service"
	"github.com/padualabs/userapi/pkg/httpx"
	"github.com/padualabs/userapi/pkg/slogx"
)

// AuthMiddleware is the per-request authentication gate. It extracts basic
// credentials, resolves and verifies the user, and attaches the identity to
// the request context. Every denial cause (no credentials, unknown user,
// wrong secret) produces the same 401 body so callers cannot enumerate
// usernames.
func AuthMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			name, secret, ok := httpx.ParseBasicAuth(r.Header.Get("Authorization"))
			if !ok {
				// Malformed credentials are indistinguishable from absent ones.
				writeAccessDenied(w)
				return
			}

			user, err := auth.Authenticate(ctx, name, secret)
			if err != nil {
				if errors.Is(err, service.ErrAccessDenied) {
					writeAccessDenied(w)
					return
				}
				log.Error("authentication lookup failed", "err", err)
				writeServerError(w)
				return
			}

			ctx = contextWithUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAccessDenied(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="api"`)
	httpx.WriteJSON(w, http.StatusUnauthorized, messageResponse{Message: "Access Denied"})
}

func writeServerError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
}
