package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/server/auth"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T) (*RedisList, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisList(client), mr
}

func TestRevoke_ExpiresWithToken(t *testing.T) {
	l, mr := newTestList(t)
	ctx := context.Background()
	now := time.Now()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Revoke(ctx, "jti-1", now.Add(time.Hour)))

	revoked, err := l.IsRevoked(ctx, "jti-1", "u-1", now)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = l.IsRevoked(ctx, "jti-2", "u-1", now)
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(time.Hour + time.Second)

	revoked, err = l.IsRevoked(ctx, "jti-1", "u-1", now)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevoke_SkipsAlreadyExpired(t *testing.T) {
	l, mr := newTestList(t)
	now := time.Now()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Revoke(context.Background(), "jti-old", now.Add(-time.Minute)))
	assert.False(t, mr.Exists(jtiKeyPrefix+"jti-old"))
}

func TestRevokeSubject(t *testing.T) {
	l, mr := newTestList(t)
	ctx := context.Background()
	cutoff := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, l.RevokeSubject(ctx, "u-1", cutoff, 2*time.Hour))
	assert.Equal(t, 2*time.Hour, mr.TTL(subjectKeyPrefix+"u-1"))

	tests := []struct {
		name     string
		subject  string
		issuedAt time.Time
		want     bool
	}{
		{"issued before", "u-1", cutoff.Add(-time.Minute), true},
		{"issued at cut-off", "u-1", cutoff, true},
		{"issued later in the same second", "u-1", cutoff.Add(50 * time.Millisecond), false},
		{"issued after", "u-1", cutoff.Add(time.Second), false},
		{"other subject", "u-2", cutoff.Add(-time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.IsRevoked(ctx, "jti-x", tt.subject, tt.issuedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRevokeSubject_LoginRightAfterReset(t *testing.T) {
	l, _ := newTestList(t)
	ctx := context.Background()
	issuer := auth.NewSessionIssuer([]byte("test-secret"), time.Hour, l)
	user := &models.User{ID: "u-1", Email: "alice@example.com", Role: "customer"}

	old, _, err := issuer.Issue(user)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, issuer.RevokeAll(ctx, user.ID))
	time.Sleep(50 * time.Millisecond)

	fresh, _, err := issuer.Issue(user)
	require.NoError(t, err)

	_, err = issuer.Verify(ctx, old)
	assert.ErrorIs(t, err, common.ErrInvalidOrExpiredSession)

	_, err = issuer.Verify(ctx, fresh)
	assert.NoError(t, err)
}

func TestIsRevoked_BackendDown(t *testing.T) {
	l, mr := newTestList(t)
	mr.Close()

	_, err := l.IsRevoked(context.Background(), "jti", "u-1", time.Now())
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = Connect(context.Background(), "not a url")
	assert.Error(t, err)
}
