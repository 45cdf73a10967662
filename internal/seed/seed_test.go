package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/padualabs/userapi/internal/store/drivers/sqlite"
	"github.com/padualabs/userapi/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "userapi-seed-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestUsers_EmbeddedDataIsComplete(t *testing.T) {
	users, err := Users()
	require.NoError(t, err)
	require.NotEmpty(t, users)

	for _, u := range users {
		require.NotEmpty(t, u.Username)
		require.NotEmpty(t, u.FirstName)
		require.NotEmpty(t, u.LastName)
		require.NotEmpty(t, u.Password)
		require.NotEmpty(t, u.MomFavorite)
	}
}

func TestProvision_DestructiveIdempotent(t *testing.T) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		filepath.Join(t.TempDir(), "seed.db"),
	)
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	require.NoError(t, Provision(ctx, st, logger))

	users, err := Users()
	require.NoError(t, err)

	for _, u := range users {
		stored, err := st.Users().GetByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.NotEqual(t, u.Password, stored.PasswordHash,
			"seeded passwords must be stored hashed")
		require.True(t, cryptox.VerifyPassword(u.Password, stored.PasswordHash))
	}

	// Provisioning again must succeed and land in the same state.
	require.NoError(t, Provision(ctx, st, logger))

	stored, err := st.Users().GetByUsername(ctx, users[0].Username)
	require.NoError(t, err)
	require.NotZero(t, stored.ID)
}
