package storage

import (
	"context"
	"path/filepath"
	"testing"

	"kedai/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, repository.KeyAuthToken)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, []byte("token-1")))
	got, err := store.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("token-1"), got)

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, []byte("token-2")))
	got, err = store.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("token-2"), got)

	require.NoError(t, store.Delete(ctx, repository.KeyAuthToken))
	_, err = store.Get(ctx, repository.KeyAuthToken)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestBlobStore_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Delete(ctx, "never-written"))
}

func TestBlobStore_FileBucketCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "kedai")

	store, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, repository.KeyCustomerData, []byte(`{"id":"c1"}`)))
	got, err := store.Get(ctx, repository.KeyCustomerData)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1"}`, string(got))
}

func TestOpen_InvalidScheme(t *testing.T) {
	_, err := Open(context.Background(), "nosuchscheme://bucket")
	assert.Error(t, err)
}
