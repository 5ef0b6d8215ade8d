package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStoreSingleUse(t *testing.T) {
	store := NewMemoryTokenStore(time.Hour)
	ctx := context.Background()

	token, err := store.Mint(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.True(t, store.Consume(ctx, token))
	assert.False(t, store.Consume(ctx, token), "a consumed token must not be replayable")
}

func TestMemoryTokenStoreRejectsUnknownAndEmpty(t *testing.T) {
	store := NewMemoryTokenStore(time.Hour)
	ctx := context.Background()

	assert.False(t, store.Consume(ctx, ""))
	assert.False(t, store.Consume(ctx, "never-minted"))
}

func TestMemoryTokenStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryTokenStore(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Mint(ctx)
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestMemoryTokenStoreExpiry(t *testing.T) {
	store := NewMemoryTokenStore(10 * time.Millisecond)
	ctx := context.Background()

	token, err := store.Mint(ctx)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.Consume(ctx, token), "an expired token must be rejected")
}

func TestMemoryTokenStoreEvictsExpiredOnMint(t *testing.T) {
	store := NewMemoryTokenStore(10 * time.Millisecond).(*memoryTokenStore)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := store.Mint(ctx)
		require.NoError(t, err)
	}
	time.Sleep(20 * time.Millisecond)

	_, err := store.Mint(ctx)
	require.NoError(t, err)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.tokens, 1, "expired tokens should have been evicted")
}
