// Package resettokens declares the server-side repository contract for
// password reset tokens.
package resettokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// Repository stores hashed reset tokens.
type Repository interface {
	// Create inserts a new unused token.
	Create(ctx context.Context, token *models.ResetToken) (*models.ResetToken, error)

	// InvalidateUnused marks every unused token of userID as used and returns
	// how many were affected.
	InvalidateUnused(ctx context.Context, userID string) (int64, error)

	// LatestUnused returns the newest unused token of userID or
	// common.ErrorNotFound.
	LatestUnused(ctx context.Context, userID string) (*models.ResetToken, error)

	// MarkUsed flips used to true. It reports false when the token was
	// already used, so only one caller can consume a token.
	MarkUsed(ctx context.Context, id string) (bool, error)

	// PurgeExpired deletes tokens that expired before now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
