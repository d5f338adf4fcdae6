package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/cryptox"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/repomanager"
)

// Reset token parameters.
const (
	ResetTokenBytes = 32
	ResetTokenTTL   = 15 * time.Minute
)

// ResetTokenService manages single-use password reset tokens. At most one
// unused token per user is live; issuing a new one invalidates the rest.
type ResetTokenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	now         func() time.Time
}

func NewResetTokenService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.Hasher) *ResetTokenService {
	return &ResetTokenService{db: db, repomanager: m, hasher: hasher, now: time.Now}
}

// Issue creates a token for userID and returns the raw value for the reset
// link. Issues for the same user are serialized on the user row.
func (s *ResetTokenService) Issue(ctx context.Context, userID string) (string, error) {
	raw, err := cryptox.RandomToken(ResetTokenBytes)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	hash, err := s.hasher.Hash(raw)
	if err != nil {
		return "", fmt.Errorf("hash token: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).LockByID(ctx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		repo := s.repomanager.ResetTokens(tx)
		if _, err := repo.InvalidateUnused(ctx, userID); err != nil {
			return fmt.Errorf("invalidate previous tokens: %w", err)
		}
		if _, err := repo.Create(ctx, &models.ResetToken{
			UserID:    userID,
			TokenHash: hash,
			ExpiresAt: s.now().Add(ResetTokenTTL),
		}); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return raw, nil
}

// Verify checks rawToken against the user's newest unused token without
// consuming it. An expired token is marked used before failing.
func (s *ResetTokenService) Verify(ctx context.Context, userID, rawToken string) (*models.ResetToken, error) {
	repo := s.repomanager.ResetTokens(s.db)

	t, err := repo.LatestUnused(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNoToken
		}
		return nil, fmt.Errorf("load token: %w", err)
	}

	if s.now().After(t.ExpiresAt) {
		if _, err := repo.MarkUsed(ctx, t.ID); err != nil {
			return nil, fmt.Errorf("retire expired token: %w", err)
		}
		return nil, common.ErrTokenExpired
	}

	ok, err := s.hasher.Verify(rawToken, t.TokenHash)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if !ok {
		return nil, common.ErrTokenMismatch
	}
	return t, nil
}

// Consume marks the token used on db. It reports false when someone else
// consumed it first; calling it twice is harmless.
func (s *ResetTokenService) Consume(ctx context.Context, db dbx.DBTX, tokenID string) (bool, error) {
	ok, err := s.repomanager.ResetTokens(db).MarkUsed(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("consume token: %w", err)
	}
	return ok, nil
}

// PurgeExpired deletes expired tokens and returns how many were removed.
func (s *ResetTokenService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repomanager.ResetTokens(s.db).PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purge reset tokens: %w", err)
	}
	return n, nil
}
