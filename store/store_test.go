package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/chacha20poly1305"
)

// All backends must satisfy the same contract; exercise them through one
// table.
func TestBackendsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	fileStore, err := NewFileStore(filepath.Join(dir, "plain", "session.json"))
	require.NoError(t, err)

	secureStore, err := NewSecureStore(filepath.Join(dir, "sealed", "session.db"), testKey())
	require.NoError(t, err)

	backends := map[string]KeyValueStore{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"secure": secureStore,
	}

	ctx := context.Background()
	for name, kv := range backends {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, KeyAuthToken)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Set(ctx, KeyAuthToken, "tok-1"))
			require.NoError(t, kv.Set(ctx, KeyUserData, `{"email":"a@b.com"}`))

			got, err := kv.Get(ctx, KeyAuthToken)
			require.NoError(t, err)
			assert.Equal(t, "tok-1", got)

			require.NoError(t, kv.Set(ctx, KeyAuthToken, "tok-2"))
			got, err = kv.Get(ctx, KeyAuthToken)
			require.NoError(t, err)
			assert.Equal(t, "tok-2", got)

			require.NoError(t, kv.Delete(ctx, KeyAuthToken))
			_, err = kv.Get(ctx, KeyAuthToken)
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting an absent key is not an error.
			require.NoError(t, kv.Delete(ctx, KeyAuthToken))
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, KeyAuthToken, "tok-1"))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := second.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestSecureStoreCiphertextOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	kv, err := NewSecureStore(path, testKey())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyAuthToken, "tok-secret-value"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok-secret-value", "plaintext must not hit the disk")

	reopened, err := NewSecureStore(path, testKey())
	require.NoError(t, err)
	got, err := reopened.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-secret-value", got)
}

func TestSecureStoreWrongKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	kv, err := NewSecureStore(path, testKey())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyAuthToken, "tok-1"))

	other := testKey()
	other[0] ^= 0xff
	intruder, err := NewSecureStore(path, other)
	require.NoError(t, err)
	_, err = intruder.Get(ctx, KeyAuthToken)
	assert.Error(t, err)
}

func TestSecureStoreRejectsShortKey(t *testing.T) {
	_, err := NewSecureStore(filepath.Join(t.TempDir(), "session.db"), []byte("too-short"))
	assert.Error(t, err)
}

func testKey() []byte {
	key := make([]byte, chacha20poly1305.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}
