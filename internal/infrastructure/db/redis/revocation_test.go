package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRevocationStore(client), mr
}

func TestRevocationStore_RevokeThenCheck(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "tok1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "tok1", time.Hour))

	revoked, err = store.IsRevoked(ctx, "tok1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Other tokens are unaffected.
	revoked, err = store.IsRevoked(ctx, "tok2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "tok1", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "tok1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
