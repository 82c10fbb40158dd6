package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests reach into the store's records directly: external callers
// only ever see clones, so deactivation-in-place is not reachable
// through the public surface.

func TestMemoryStore_InactiveRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, store *MemoryStore, token string) {
		t.Helper()
		_, err := store.Create(ctx, &Session{
			ID:        uuid.New(),
			Token:     token,
			UserID:    "u1",
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
			IsActive:  true,
		})
		require.NoError(t, err)
	}

	t.Run("get reports inactive before expiry", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore(3, EvictOldestCreated)
		seed(t, store, "tok-1")

		store.mu.Lock()
		store.sessions["tok-1"].IsActive = false
		store.mu.Unlock()

		// Inactive wins over expired even when both hold
		_, err := store.Get(ctx, "tok-1", now.Add(2*time.Hour))
		assert.ErrorIs(t, err, ErrSessionInactive)
	})

	t.Run("sweep reclaims inactive records", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore(3, EvictOldestCreated)
		seed(t, store, "tok-1")
		seed(t, store, "tok-2")

		store.mu.Lock()
		store.sessions["tok-1"].IsActive = false
		store.mu.Unlock()

		n, err := store.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		store.mu.Lock()
		_, gone := store.sessions["tok-1"]
		_, kept := store.sessions["tok-2"]
		index := len(store.byUser["u1"])
		store.mu.Unlock()

		assert.False(t, gone)
		assert.True(t, kept)
		assert.Equal(t, 1, index)
	})

	t.Run("inactive records do not hold an admission slot", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore(2, EvictOldestCreated)
		seed(t, store, "tok-1")
		seed(t, store, "tok-2")

		store.mu.Lock()
		store.sessions["tok-1"].IsActive = false
		store.mu.Unlock()

		evicted, err := store.Create(ctx, &Session{
			ID:        uuid.New(),
			Token:     "tok-3",
			UserID:    "u1",
			CreatedAt: now.Add(time.Minute),
			ExpiresAt: now.Add(time.Hour),
			IsActive:  true,
		})
		require.NoError(t, err)
		assert.Nil(t, evicted)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	token, err := generateToken(64)
	require.NoError(t, err)
	// 64 random bytes base64url-encode to 86 characters
	assert.Len(t, token, 86)

	other, err := generateToken(64)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	short, err := generateToken(16)
	require.NoError(t, err)
	assert.Len(t, short, 22)
}
