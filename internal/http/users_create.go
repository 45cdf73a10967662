package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/padualabs/userapi/internal/domain"
	"github.com/padualabs/userapi/internal/service"
	"github.com/padualabs/userapi/internal/store"
	"github.com/padualabs/userapi/pkg/httpx"
	"github.com/padualabs/userapi/pkg/slogx"
)

type CreateUserHandler struct {
	RegistrationService *service.RegistrationService
}

type createUserRequest struct {
	UserName    string `json:"userName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Password    string `json:"password"`
	MomFavorite string `json:"momFavorite"`
}

// ServeHTTP creates a user. On success it answers 201 with an empty body and
// a Location header pointing at the canonical resource root.
func (h *CreateUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	_, err := h.RegistrationService.Register(ctx, domain.Registration{
		Username:    req.UserName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
		MomFavorite: req.MomFavorite,
	})
	if err != nil {
		var verr *service.ValidationError
		var cerr *store.ConstraintError
		switch {
		case errors.As(err, &verr):
			httpx.WriteJSON(w, http.StatusBadRequest, errorsResponse{Errors: verr.Messages})
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{
				Message: "This username is already in use",
			})
		case errors.As(err, &cerr):
			// Storage rejected the record shape itself; still the caller's fault.
			httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{Message: cerr.Detail})
		default:
			log.Error("failed to register user", "err", err)
			writeServerError(w)
		}
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
