package mfachallenges

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.MFAChallenge, error) {
	query := `
		SELECT user_id, code_hash, expires_at, attempts, last_sent_at, version
		FROM mfa_challenges
		WHERE user_id = $1
	`
	c := &models.MFAChallenge{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&c.UserID, &c.CodeHash, &c.ExpiresAt, &c.Attempts, &c.LastSentAt, &c.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, c *models.MFAChallenge) (int64, error) {
	query := `
		INSERT INTO mfa_challenges (user_id, code_hash, expires_at, attempts, last_sent_at, version)
		VALUES ($1, $2, $3, 0, $4, 1)
		ON CONFLICT (user_id) DO UPDATE
		SET code_hash = EXCLUDED.code_hash,
		    expires_at = EXCLUDED.expires_at,
		    attempts = 0,
		    last_sent_at = EXCLUDED.last_sent_at,
		    version = mfa_challenges.version + 1
		RETURNING version
	`
	var version int64
	if err := r.db.QueryRowContext(ctx, query, c.UserID, c.CodeHash, c.ExpiresAt, c.LastSentAt).Scan(&version); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	c.Attempts = 0
	c.Version = version
	return version, nil
}

func (r *PostgresRepository) IncrementAttempts(ctx context.Context, userID string, version int64) (bool, error) {
	query := `
		UPDATE mfa_challenges SET attempts = attempts + 1, version = version + 1
		WHERE user_id = $1 AND version = $2
	`
	return r.conditional(ctx, query, userID, version)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, version int64) (bool, error) {
	query := `
		DELETE FROM mfa_challenges
		WHERE user_id = $1 AND version = $2
	`
	return r.conditional(ctx, query, userID, version)
}

func (r *PostgresRepository) conditional(ctx context.Context, query string, userID string, version int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, userID, version)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}
