package domain

import "time"

// User is the sole persisted entity. PasswordHash is always an argon2id
// PHC-encoded hash; the plaintext secret never reaches storage.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	MomFavorite  string // mandatory but carries no semantic role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last name with a space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Registration is the raw user-creation input before validation and hashing.
type Registration struct {
	Username    string
	FirstName   string
	LastName    string
	Password    string // plaintext; hashed by the registration workflow
	MomFavorite string
}

// LogoutReceipt is the result reported by a session-termination collaborator
// and forwarded verbatim to the caller.
type LogoutReceipt struct {
	Success bool
	Error   string
	Message string
}
