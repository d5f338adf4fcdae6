// Package auth issues and verifies stateless session tokens (HS256 JWT).
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is the session lifetime when none is configured.
const DefaultSessionTTL = 2 * time.Hour

// Claims are the session token claims: sub, role, email, iat, exp and jti.
// iat_ms repeats iat with millisecond precision so a subject revocation does
// not also cover sessions issued later within the same second.
type Claims struct {
	jwt.RegisteredClaims
	Role       string `json:"role"`
	Email      string `json:"email"`
	IssuedAtMs int64  `json:"iat_ms,omitempty"`
}

// UserID returns the subject claim.
func (c *Claims) UserID() string { return c.Subject }

// IssuedAtTime returns the most precise issue time the token carries.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAtMs > 0 {
		return time.UnixMilli(c.IssuedAtMs)
	}
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// RevocationList remembers revoked sessions until they would have expired.
type RevocationList interface {
	// Revoke invalidates a single token id until the given time.
	Revoke(ctx context.Context, jti string, until time.Time) error
	// RevokeSubject invalidates every token of subject issued at or before at.
	// The record is kept for ttl.
	RevokeSubject(ctx context.Context, subject string, at time.Time, ttl time.Duration) error
	// IsRevoked reports whether the token is covered by either rule.
	IsRevoked(ctx context.Context, jti, subject string, issuedAt time.Time) (bool, error)
}

// SessionIssuer mints and checks session tokens. Verification never reads the
// credential store.
type SessionIssuer struct {
	secret      []byte
	ttl         time.Duration
	revocations RevocationList
	now         func() time.Time
}

// NewSessionIssuer builds an issuer. A nil revocation list disables logout
// and reset revocation checks.
func NewSessionIssuer(secret []byte, ttl time.Duration, revocations RevocationList) *SessionIssuer {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionIssuer{
		secret:      secret,
		ttl:         ttl,
		revocations: revocations,
		now:         time.Now,
	}
}

// TTL returns the configured session lifetime.
func (s *SessionIssuer) TTL() time.Duration { return s.ttl }

// Issue signs a new session token for user.
func (s *SessionIssuer) Issue(user *models.User) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
		Role:       user.Role,
		Email:      user.Email,
		IssuedAtMs: now.UnixMilli(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}
	return token, claims, nil
}

// Verify checks signature, algorithm and expiry, then consults the
// revocation list. Any token problem yields common.ErrInvalidOrExpiredSession;
// only revocation backend failures are returned as other errors.
func (s *SessionIssuer) Verify(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID, claims.Subject, claims.IssuedAtTime())
		if err != nil {
			return nil, fmt.Errorf("revocation lookup: %w", err)
		}
		if revoked {
			return nil, common.ErrInvalidOrExpiredSession
		}
	}
	return claims, nil
}

// Revoke invalidates token until its natural expiry. Tokens that are already
// invalid need no revocation and are ignored.
func (s *SessionIssuer) Revoke(ctx context.Context, token string) error {
	if s.revocations == nil {
		return nil
	}
	claims, err := s.parse(token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidOrExpiredSession) {
			return nil
		}
		return err
	}
	return s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// RevokeAll invalidates every session of userID issued so far.
func (s *SessionIssuer) RevokeAll(ctx context.Context, userID string) error {
	if s.revocations == nil {
		return nil
	}
	return s.revocations.RevokeSubject(ctx, userID, s.now(), s.ttl)
}

func (s *SessionIssuer) parse(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return nil, common.ErrInvalidOrExpiredSession
	}
	return claims, nil
}
