package http

import (
	"net/http"

	"github.com/padualabs/userapi/internal/service"
	"github.com/padualabs/userapi/pkg/httpx"
)

// LogoutHandler delegates to the session-termination collaborator and
// forwards its receipt verbatim as the response body.
type LogoutHandler struct {
	Sessions service.SessionTerminator
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Sessions.Terminate(r.Context())
	if err != nil || !receipt.Success {
		httpx.WriteJSON(w, http.StatusOK, logoutErrorResponse{
			Error:   receipt.Error,
			Message: receipt.Message,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, logoutSuccessResponse{
		Success: receipt.Success,
		Message: receipt.Message,
	})
}
