package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/padualabs/userapi/internal/domain"
	"github.com/padualabs/userapi/internal/store"
	"github.com/padualabs/userapi/internal/store/drivers/sqlite"
	"github.com/padualabs/userapi/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func validRegistration() domain.Registration {
	return domain.Registration{
		Username:    "joe",
		FirstName:   "Joe",
		LastName:    "Smith",
		Password:    "joepassword",
		MomFavorite: "Google",
	}
}

func TestRegister_Success(t *testing.T) {
	s := newFakeStore()
	svc := &RegistrationService{Store: s}

	user, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	require.Positive(t, user.ID)

	// The stored secret is a hash, never the plaintext.
	stored, err := s.Users().GetByUsername(context.Background(), "joe")
	require.NoError(t, err)
	require.NotEqual(t, "joepassword", stored.PasswordHash)
	require.True(t, cryptox.VerifyPassword("joepassword", stored.PasswordHash))
}

func TestRegister_CollectsAllValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Registration)
		missing []string
	}{
		{
			name:    "missing username",
			mutate:  func(r *domain.Registration) { r.Username = "" },
			missing: []string{`Please provide a value for "userName"`},
		},
		{
			name: "missing password and last name",
			mutate: func(r *domain.Registration) {
				r.LastName = ""
				r.Password = ""
			},
			missing: []string{
				`Please provide a value for "lastName"`,
				`Please provide a value for "password"`,
			},
		},
		{
			name: "everything missing",
			mutate: func(r *domain.Registration) {
				*r = domain.Registration{}
			},
			missing: []string{
				`Please provide a value for "userName"`,
				`Please provide a value for "firstName"`,
				`Please provide a value for "lastName"`,
				`Please provide a value for "password"`,
				`Please provide a value for "Mother's Favorite Search Engine"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeStore()
			svc := &RegistrationService{Store: s}

			in := validRegistration()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.missing, verr.Messages,
				"one message per missing field, all collected in one pass")
			require.Zero(t, s.users.createCalls, "validation failures must stop before storage")
		})
	}
}

func TestRegister_DuplicateStopsBeforeInsert(t *testing.T) {
	s := newFakeStore()
	svc := &RegistrationService{Store: s}

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	require.Equal(t, 1, s.users.createCalls)

	_, err = svc.Register(context.Background(), validRegistration())
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.Equal(t, 1, s.users.createCalls,
		"a failed uniqueness pre-check is a hard early return, not a second insert attempt")
}

func TestRegister_LateDuplicateFromStore(t *testing.T) {
	// Simulate the race window: the pre-check passes but the insert loses to
	// a concurrent registration and the constraint fires.
	s := newFakeStore()
	s.users.createErr = store.ErrAlreadyExists

	svc := &RegistrationService{Store: s}
	_, err := svc.Register(context.Background(), validRegistration())
	require.ErrorIs(t, err, ErrUsernameTaken,
		"a late duplicate must look identical to an early one")
}

func TestRegister_StorageRejectionSurfacesDetail(t *testing.T) {
	s := newFakeStore()
	s.users.createErr = &store.ConstraintError{Detail: "NOT NULL constraint failed"}

	svc := &RegistrationService{Store: s}
	_, err := svc.Register(context.Background(), validRegistration())

	var cerr *store.ConstraintError
	require.ErrorAs(t, err, &cerr)
	require.Contains(t, cerr.Detail, "NOT NULL")
}

func TestRegister_StorageFaultPropagates(t *testing.T) {
	s := newFakeStore()
	boom := errors.New("disk on fire")
	s.users.createErr = boom

	svc := &RegistrationService{Store: s}
	_, err := svc.Register(context.Background(), validRegistration())
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		filepath.Join(t.TempDir(), "register.db"),
	)
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &RegistrationService{Store: st}

	// Two registrations race on the same username; both can pass the
	// pre-check, so the unique constraint decides the loser.
	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), validRegistration())
		}()
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrUsernameTaken):
			duplicates++
		default:
			t.Fatalf("unexpected outcome: %v", err)
		}
	}
	require.Equal(t, 1, succeeded, "exactly one registration wins")
	require.Equal(t, 1, duplicates, "the loser sees the duplicate outcome, not a generic fault")

	// And only one row exists.
	_, err = st.Users().GetByUsername(context.Background(), "joe")
	require.NoError(t, err)
}
