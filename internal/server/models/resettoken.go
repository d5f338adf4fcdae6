package models

import "time"

// ResetToken is a stored password-reset credential. Only the hash of the
// raw token is persisted.
type ResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
