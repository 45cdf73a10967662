package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/padualabs/userapi/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ConstraintError reports a storage-level rejection other than the username
// uniqueness guard, e.g. a NOT NULL violation from a malformed record. It is
// attributable to the input shape, so callers translate it to a client error
// rather than an opaque fault.
type ConstraintError struct {
	Detail string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("store: constraint violated: %s", e.Detail)
}

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users

	// ApplyMigrations brings the schema up to date. Idempotent; runs before
	// any Users operation.
	ApplyMigrations() error

	// Reset drops the whole schema and re-applies migrations. Destructive;
	// for setup-time provisioning only, never on a request path.
	Reset() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetByUsername returns the user with the given username, or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Exists reports whether a user with the given username is persisted.
	Exists(ctx context.Context, username string) (bool, error)

	// Create inserts a new user and returns it with its assigned id.
	// A duplicate username yields ErrAlreadyExists; the storage-level unique
	// constraint is the final authority even when callers pre-check.
	Create(ctx context.Context, u domain.User) (domain.User, error)
}
