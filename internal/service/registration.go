package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/padualabs/userapi/internal/domain"
	"github.com/padualabs/userapi/internal/store"
	"github.com/padualabs/userapi/pkg/cryptox"
	"github.com/padualabs/userapi/pkg/slogx"
)

// ErrUsernameTaken reports a registration against an already-used username,
// whether caught by the pre-check or by the storage constraint under a race.
var ErrUsernameTaken = errors.New("username already in use")

// ValidationError collects every missing-field message from one validation
// pass; callers need the full list, not just the first violation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

type RegistrationService struct {
	Store store.Store
}

// Register runs the user-creation workflow in strict order:
// field validation, uniqueness pre-check, secret hashing, persistence.
// Each step is a hard early exit; in particular a duplicate username stops
// the workflow before any hashing or insertion happens.
func (s *RegistrationService) Register(ctx context.Context, in domain.Registration) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate all required fields in one pass.
	if err := validate(in); err != nil {
		return domain.User{}, err
	}

	// 2. Uniqueness pre-check. The store constraint still guards the
	// check-then-insert race below.
	taken, err := s.Store.Users().Exists(ctx, in.Username)
	if err != nil {
		log.Error("failed to check username availability", slog.Any("error", err))
		return domain.User{}, err
	}
	if taken {
		log.Warn("registration attempted with already-taken username",
			slog.String("username", in.Username),
		)
		return domain.User{}, ErrUsernameTaken
	}

	// 3. Hash the secret. Step 1 already guarantees a password was supplied;
	// this guard is a safety re-check, never a skip path.
	if in.Password == "" {
		return domain.User{}, &ValidationError{Messages: []string{missingFieldMessage("password")}}
	}
	passwordHash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Persist. A concurrent registration may have won the race since
	// step 2; the store reports that as ErrAlreadyExists and it is treated
	// identically to the pre-check outcome.
	user, err := s.Store.Users().Create(ctx, domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: passwordHash,
		MomFavorite:  in.MomFavorite,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		log.Error("failed to create user",
			slog.String("username", in.Username),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// validate confirms all five required fields are present and non-empty,
// collecting one human-readable message per missing field.
func validate(in domain.Registration) error {
	var messages []string

	if in.Username == "" {
		messages = append(messages, missingFieldMessage("userName"))
	}
	if in.FirstName == "" {
		messages = append(messages, missingFieldMessage("firstName"))
	}
	if in.LastName == "" {
		messages = append(messages, missingFieldMessage("lastName"))
	}
	if in.Password == "" {
		messages = append(messages, missingFieldMessage("password"))
	}
	if in.MomFavorite == "" {
		messages = append(messages, missingFieldMessage("Mother's Favorite Search Engine"))
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func missingFieldMessage(field string) string {
	return fmt.Sprintf("Please provide a value for %q", field)
}
