package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/surveybasket/api/internal/core/domain"
)

func TestRefreshTokenActivity(t *testing.T) {
	now := time.Now().UTC()
	revokedAt := now.Add(-time.Hour)

	cases := []struct {
		name      string
		expiresAt time.Time
		revokedAt *time.Time
		active    bool
	}{
		{
			name:      "active until expiry",
			expiresAt: now.Add(time.Minute),
			active:    true,
		},
		{
			name:      "expiry boundary is exclusive of validity",
			expiresAt: now,
			active:    false,
		},
		{
			name:      "expired",
			expiresAt: now.Add(-time.Second),
			active:    false,
		},
		{
			name:      "revoked before expiry",
			expiresAt: now.Add(time.Minute),
			revokedAt: &revokedAt,
			active:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := &domain.RefreshToken{
				ExpiresAt: tc.expiresAt,
				RevokedAt: tc.revokedAt,
			}
			assert.Equal(t, tc.active, token.IsActiveAt(now))
		})
	}
}

func TestRefreshTokenExpiryBoundary(t *testing.T) {
	now := time.Now().UTC()
	token := &domain.RefreshToken{ExpiresAt: now}

	assert.True(t, token.IsExpiredAt(now))
	assert.False(t, token.IsExpiredAt(now.Add(-time.Nanosecond)))
}
