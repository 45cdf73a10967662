package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/padualabs/userapi/internal/domain"
	"github.com/padualabs/userapi/internal/store"
	"github.com/padualabs/userapi/pkg/cryptox"
	"github.com/padualabs/userapi/pkg/slogx"
)

// ErrAccessDenied is the single outcome for every authentication failure.
// Callers must not be able to tell an unknown username from a wrong secret.
var ErrAccessDenied = errors.New("access denied")

type AuthService struct {
	Store store.Store
}

// Authenticate resolves the user for a username/secret pair.
// Unknown usernames, wrong secrets, and unverifiable stored hashes all
// collapse into ErrAccessDenied; only storage faults surface separately.
func (s *AuthService) Authenticate(ctx context.Context, username, secret string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrAccessDenied
		}
		log.Error("failed to look up user during authentication", slog.Any("error", err))
		return domain.User{}, err
	}

	if !cryptox.VerifyPassword(secret, user.PasswordHash) {
		log.Warn("authentication failure", slog.String("username", username))
		return domain.User{}, ErrAccessDenied
	}

	return user, nil
}
