package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "lease")
	assert.ErrorIs(t, err, ErrNotFound)

	data := []byte("owner=7")
	require.NoError(t, store.Put(ctx, "lease", data))

	// Mutating the caller's slice does not change the stored copy.
	data[0] = 'X'
	got, err := store.Get(ctx, "lease")
	require.NoError(t, err)
	assert.Equal(t, "owner=7", string(got))

	// Neither does mutating the returned slice.
	got[0] = 'Y'
	got2, err := store.Get(ctx, "lease")
	require.NoError(t, err)
	assert.Equal(t, "owner=7", string(got2))

	require.NoError(t, store.Put(ctx, "empty", nil))
	got, err = store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 2, store.Len())

	assert.ErrorIs(t, store.Put(ctx, "", data), ErrInvalidName)

	require.NoError(t, store.Delete(ctx, "lease"))
	require.NoError(t, store.Delete(ctx, "lease"))
	assert.Equal(t, 1, store.Len())
}
