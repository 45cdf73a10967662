// Package seed provisions a fresh database: it resets the schema and bulk
// loads the embedded starter users. Setup-time only; nothing here runs on a
// request path.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/padualabs/userapi/internal/domain"
	"github.com/padualabs/userapi/internal/store"
	"github.com/padualabs/userapi/pkg/cryptox"
)

//go:embed data.json
var rawData []byte

type seedUser struct {
	UserName    string `json:"userName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Password    string `json:"password"`
	MomFavorite string `json:"momFavorite"`
}

type seedData struct {
	Users []seedUser `json:"users"`
}

// Users returns the embedded starter users with plaintext passwords.
func Users() ([]domain.Registration, error) {
	var data seedData
	if err := json.Unmarshal(rawData, &data); err != nil {
		return nil, fmt.Errorf("malformed seed data: %w", err)
	}

	users := make([]domain.Registration, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, domain.Registration{
			Username:    u.UserName,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Password:    u.Password,
			MomFavorite: u.MomFavorite,
		})
	}
	return users, nil
}

// Provision drops and recreates the schema, then inserts every embedded
// user with a freshly hashed password. Destructive-idempotent: running it
// twice leaves the same state.
func Provision(ctx context.Context, st store.Store, logger *slog.Logger) error {
	logger.Info("resetting schema")
	if err := st.Reset(); err != nil {
		return fmt.Errorf("failed to reset schema: %w", err)
	}

	users, err := Users()
	if err != nil {
		return err
	}

	logger.Info("hashing passwords and creating user records", "count", len(users))
	for _, u := range users {
		hash, err := cryptox.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
		}

		created, err := st.Users().Create(ctx, domain.User{
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			PasswordHash: hash,
			MomFavorite:  u.MomFavorite,
		})
		if err != nil {
			return fmt.Errorf("failed to create seed user %s: %w", u.Username, err)
		}
		logger.Info("seed user created", "user_id", created.ID, "username", created.Username)
	}

	return nil
}
