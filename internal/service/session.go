package service

import (
	"context"

	"github.com/padualabs/userapi/internal/domain"
)

// SessionTerminator ends whatever session state a deployment keeps outside
// this service. The API itself holds no session state; the receipt is
// forwarded to the caller verbatim.
type SessionTerminator interface {
	Terminate(ctx context.Context) (domain.LogoutReceipt, error)
}

// StatelessSessions is the default terminator for deployments without an
// external session collaborator: there is nothing to tear down, so logout
// always succeeds.
type StatelessSessions struct{}

func (StatelessSessions) Terminate(ctx context.Context) (domain.LogoutReceipt, error) {
	return domain.LogoutReceipt{
		Success: true,
		Message: "Logged out successfully",
	}, nil
}
