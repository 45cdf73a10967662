package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/padualabs/userapi/internal/domain"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `
		SELECT id, username, first_name, last_name, password_hash, mom_favorite, created_at, updated_at
		FROM users
		WHERE username = ?`

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.MomFavorite,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const query = `
		INSERT INTO users (username, first_name, last_name, password_hash, mom_favorite, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	err := r.db.QueryRowContext(ctx, query,
		u.Username,
		u.FirstName,
		u.LastName,
		u.PasswordHash,
		u.MomFavorite,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	return u, nil
}
