package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveybasket/api/internal/adapters/repository/memory"
)

func TestIssueForAndFindByValue(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAuthRepository()
	userID := uuid.New()

	token, err := ledger.IssueFor(ctx, userID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	assert.Equal(t, userID, token.UserID)
	assert.True(t, token.IsActiveAt(time.Now().UTC()))

	found, err := ledger.FindByValue(ctx, token.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, token.ID, found.ID)

	missing, err := ledger.FindByValue(ctx, "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIssuedValuesAreUnique(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAuthRepository()
	userID := uuid.New()

	seen := map[string]bool{}
	for range 50 {
		token, err := ledger.IssueFor(ctx, userID, time.Hour)
		require.NoError(t, err)
		require.False(t, seen[token.Token], "token value reused")
		seen[token.Token] = true
	}
}

func TestRevokeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAuthRepository()

	token, err := ledger.IssueFor(ctx, uuid.New(), time.Hour)
	require.NoError(t, err)

	require.NoError(t, ledger.Revoke(ctx, token.Token))

	found, err := ledger.FindByValue(ctx, token.Token)
	require.NoError(t, err)
	require.NotNil(t, found.RevokedAt)
	firstRevokedAt := *found.RevokedAt

	// Second revoke is a no-op; the original timestamp stays.
	require.NoError(t, ledger.Revoke(ctx, token.Token))

	found, err = ledger.FindByValue(ctx, token.Token)
	require.NoError(t, err)
	require.NotNil(t, found.RevokedAt)
	assert.Equal(t, firstRevokedAt, *found.RevokedAt)

	require.NoError(t, ledger.Revoke(ctx, "no-such-token"))
}

func TestRevokeIfActive(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAuthRepository()
	now := time.Now().UTC()

	token, err := ledger.IssueFor(ctx, uuid.New(), time.Hour)
	require.NoError(t, err)

	revoked, err := ledger.RevokeIfActive(ctx, token.Token, now)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = ledger.RevokeIfActive(ctx, token.Token, now)
	require.NoError(t, err)
	assert.False(t, revoked, "already revoked token must not be revoked again")
}

func TestRevokeIfActiveExpiredToken(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAuthRepository()
	now := time.Now().UTC()

	token, err := ledger.IssueFor(ctx, uuid.New(), time.Hour)
	require.NoError(t, err)

	ledger.Expire(token.Token, now)

	revoked, err := ledger.RevokeIfActive(ctx, token.Token, now)
	require.NoError(t, err)
	assert.False(t, revoked, "token expiring exactly now is no longer active")
}

func TestRevokeIfActiveHasExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAuthRepository()
	now := time.Now().UTC()

	token, err := ledger.IssueFor(ctx, uuid.New(), time.Hour)
	require.NoError(t, err)

	const workers = 16
	var winners atomic.Int32
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			revoked, err := ledger.RevokeIfActive(ctx, token.Token, now)
			assert.NoError(t, err)
			if revoked {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
