package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/cryptox"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/repomanager"
)

// MFA parameters.
const (
	MFACodeDigits     = 6
	MFACodeTTL        = 5 * time.Minute
	MFAMaxAttempts    = 5
	MFAResendCooldown = 30 * time.Second
)

// MFAService issues and checks one-time login codes. A user has at most one
// pending challenge; concurrent writers are detected through the challenge
// version and the loser gets common.ErrStorageConflict.
type MFAService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	now         func() time.Time
}

func NewMFAService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.Hasher) *MFAService {
	return &MFAService{db: db, repomanager: m, hasher: hasher, now: time.Now}
}

// Issue replaces any pending challenge with a fresh code and returns the
// plaintext code for delivery. Only its hash is stored.
func (s *MFAService) Issue(ctx context.Context, userID string) (string, error) {
	code, err := cryptox.RandomDigits(MFACodeDigits)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	hash, err := s.hasher.Hash(code)
	if err != nil {
		return "", fmt.Errorf("hash code: %w", err)
	}

	now := s.now()
	c := &models.MFAChallenge{
		UserID:     userID,
		CodeHash:   hash,
		ExpiresAt:  now.Add(MFACodeTTL),
		LastSentAt: now,
	}
	if _, err := s.repomanager.MFAChallenges(s.db).Upsert(ctx, c); err != nil {
		return "", fmt.Errorf("store challenge: %w", err)
	}
	return code, nil
}

// Resend issues a new code unless the previous one was sent less than
// MFAResendCooldown ago, in which case a *common.CooldownError carries the
// remaining wait rounded up to whole seconds.
func (s *MFAService) Resend(ctx context.Context, userID string) (string, error) {
	c, err := s.repomanager.MFAChallenges(s.db).Get(ctx, userID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("load challenge: %w", err)
	}
	if c != nil {
		if elapsed := s.now().Sub(c.LastSentAt); elapsed < MFAResendCooldown {
			return "", &common.CooldownError{Wait: roundUpToSecond(MFAResendCooldown - elapsed)}
		}
	}
	return s.Issue(ctx, userID)
}

// Verify checks code against the pending challenge. Checks run in order:
// existence, attempt limit, expiry, then the hash comparison. A match
// consumes the challenge, so a code verifies at most once.
func (s *MFAService) Verify(ctx context.Context, userID, code string) error {
	repo := s.repomanager.MFAChallenges(s.db)

	c, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrNoPendingChallenge
		}
		return fmt.Errorf("load challenge: %w", err)
	}

	if c.Attempts >= MFAMaxAttempts {
		return common.ErrTooManyAttempts
	}

	if s.now().After(c.ExpiresAt) {
		if _, err := repo.Delete(ctx, userID, c.Version); err != nil {
			return fmt.Errorf("drop expired challenge: %w", err)
		}
		return common.ErrChallengeExpired
	}

	ok, err := s.hasher.Verify(code, c.CodeHash)
	if err != nil {
		return fmt.Errorf("verify code: %w", err)
	}

	if !ok {
		applied, err := repo.IncrementAttempts(ctx, userID, c.Version)
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		if !applied {
			return common.ErrStorageConflict
		}
		return common.ErrCodeMismatch
	}

	consumed, err := repo.Delete(ctx, userID, c.Version)
	if err != nil {
		return fmt.Errorf("consume challenge: %w", err)
	}
	if !consumed {
		return common.ErrStorageConflict
	}
	return nil
}

func roundUpToSecond(d time.Duration) time.Duration {
	secs := d / time.Second
	if d%time.Second != 0 {
		secs++
	}
	return secs * time.Second
}
