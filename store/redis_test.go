package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, prefix string) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	kv, err := NewRedisStore(context.Background(), RedisConfig{Addr: mr.Addr(), Prefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestRedisStoreRoundTrip(t *testing.T) {
	kv := newTestRedisStore(t, "")
	ctx := context.Background()

	_, err := kv.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyAuthToken, "tok-1"))
	got, err := kv.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	require.NoError(t, kv.Delete(ctx, KeyAuthToken))
	_, err = kv.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreAppliesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	kv, err := NewRedisStore(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyAuthToken, "tok-1"))

	// Default prefix namespaces the raw Redis key.
	assert.True(t, mr.Exists("servinow:"+KeyAuthToken))
	assert.False(t, mr.Exists(KeyAuthToken))
}

func TestRedisStoreConnectFailure(t *testing.T) {
	_, err := NewRedisStore(context.Background(), RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
