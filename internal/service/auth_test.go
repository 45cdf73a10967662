package service

import (
	"context"
	"errors"
	"testing"

	"github.com/padualabs/userapi/internal/domain"
	"github.com/padualabs/userapi/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s *fakeStore, username, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	u, err := s.Users().Create(context.Background(), domain.User{
		Username:     username,
		FirstName:    "Joe",
		LastName:     "Smith",
		PasswordHash: hash,
		MomFavorite:  "Google",
	})
	require.NoError(t, err)
	return u
}

func TestAuthenticate_Success(t *testing.T) {
	s := newFakeStore()
	seeded := seedUser(t, s, "joe", "joepassword")

	svc := &AuthService{Store: s}
	user, err := svc.Authenticate(context.Background(), "joe", "joepassword")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, user.ID)
	require.Equal(t, "joe", user.Username)
	require.Equal(t, "Joe Smith", user.FullName())
}

func TestAuthenticate_UniformDenial(t *testing.T) {
	s := newFakeStore()
	seedUser(t, s, "joe", "joepassword")

	// A corrupt stored hash must also deny, not blow up.
	s.users.byName["corrupt"] = domain.User{
		ID:           99,
		Username:     "corrupt",
		PasswordHash: "not-a-phc-hash",
	}

	svc := &AuthService{Store: s}

	tests := []struct {
		name     string
		username string
		secret   string
	}{
		{"wrong secret", "joe", "wrongpassword"},
		{"unknown username", "nobody", "joepassword"},
		{"empty secret", "joe", ""},
		{"corrupt stored hash", "corrupt", "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.username, tt.secret)
			require.ErrorIs(t, err, ErrAccessDenied,
				"every denial cause must collapse into the same outcome")
		})
	}
}

func TestAuthenticate_StorageFaultIsNotADenial(t *testing.T) {
	s := newFakeStore()
	boom := errors.New("disk on fire")
	s.users.getErr = boom

	svc := &AuthService{Store: s}
	_, err := svc.Authenticate(context.Background(), "joe", "joepassword")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrAccessDenied)
}
