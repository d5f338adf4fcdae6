// Package revocation keeps revoked session identifiers so stateless session
// tokens can be invalidated before they expire.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/server/metrics"
	"github.com/redis/go-redis/v9"
)

const (
	jtiKeyPrefix     = "ironbank:revoked:jti:"
	subjectKeyPrefix = "ironbank:revoked:sub:"
)

// Connect parses url, builds a client and checks it with PING.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// RedisList is a Redis-backed revocation list. Keys expire on their own once
// the sessions they cover could no longer be valid.
type RedisList struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisList wraps client. The client lifecycle is managed by the caller.
func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client, now: time.Now}
}

// Revoke marks jti revoked until the given time.
func (l *RedisList) Revoke(ctx context.Context, jti string, until time.Time) error {
	if jti == "" {
		return nil
	}
	ttl := until.Sub(l.now())
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, jtiKeyPrefix+jti, "1", ttl).Err()
}

// RevokeSubject stores the cut-off time for subject in unix milliseconds;
// tokens issued at or before it are revoked.
func (l *RedisList) RevokeSubject(ctx context.Context, subject string, at time.Time, ttl time.Duration) error {
	if subject == "" {
		return nil
	}
	return l.client.Set(ctx, subjectKeyPrefix+subject, strconv.FormatInt(at.UnixMilli(), 10), ttl).Err()
}

// IsRevoked checks both the token id and the subject cut-off in one round trip.
func (l *RedisList) IsRevoked(ctx context.Context, jti, subject string, issuedAt time.Time) (bool, error) {
	start := time.Now()
	defer func() {
		metrics.RevocationCheckDuration.Observe(time.Since(start).Seconds())
	}()

	vals, err := l.client.MGet(ctx, jtiKeyPrefix+jti, subjectKeyPrefix+subject).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if len(vals) != 2 {
		return false, fmt.Errorf("unexpected MGET reply length %d", len(vals))
	}

	if vals[0] != nil {
		return true, nil
	}
	if raw, ok := vals[1].(string); ok {
		cutoff, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return false, fmt.Errorf("bad subject cut-off %q: %w", raw, err)
		}
		if issuedAt.UnixMilli() <= cutoff {
			return true, nil
		}
	}
	return false, nil
}
