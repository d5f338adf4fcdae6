package models

import "time"

// MFAChallenge is the pending second-factor code for a user. At most one
// exists per user; Version guards concurrent writers.
type MFAChallenge struct {
	UserID     string
	CodeHash   string
	ExpiresAt  time.Time
	Attempts   int
	LastSentAt time.Time
	Version    int64
}
