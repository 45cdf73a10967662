package http

import (
	"net/http"

	"github.com/padualabs/userapi/pkg/httpx"
)

// CurrentUserHandler returns the user resolved by the authentication gate.
type CurrentUserHandler struct{}

func (h *CurrentUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		// Only reachable if the route was wired without the gate.
		writeAccessDenied(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, currentUserResponse{
		ID:       user.ID,
		Name:     user.FullName(),
		Username: user.Username,
	})
}
