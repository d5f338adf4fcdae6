// Package mfachallenges stores pending second-factor challenges, one row per
// user, guarded by an optimistic version column.
package mfachallenges

import (
	"context"

	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// Repository persists MFA challenges. Conditional writes take the version the
// caller read and report false when another writer got there first.
type Repository interface {
	// Get returns the user's challenge or common.ErrorNotFound.
	Get(ctx context.Context, userID string) (*models.MFAChallenge, error)

	// Upsert replaces any existing challenge, resets attempts and returns the
	// new version.
	Upsert(ctx context.Context, c *models.MFAChallenge) (int64, error)

	// IncrementAttempts records a failed try if version is still current.
	IncrementAttempts(ctx context.Context, userID string, version int64) (bool, error)

	// Delete removes the challenge if version is still current.
	Delete(ctx context.Context, userID string, version int64) (bool, error)
}
