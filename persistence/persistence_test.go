package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreRoundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "alpha", []byte("one")))
	value, err := store.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), value)

	// Overwrite replaces the previous value
	require.NoError(t, store.Set(ctx, "alpha", []byte("two")))
	value, err = store.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)

	require.NoError(t, store.Set(ctx, "empty", []byte{}))
	value, err = store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	testStoreRoundTrip(t, store)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	original := []byte("stable")
	require.NoError(t, store.Set(ctx, "key", original))
	original[0] = 'X'

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("stable"), value)

	value[0] = 'Y'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("stable"), again)
}

func TestBoltStore(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	testStoreRoundTrip(t, store)
}

func TestBadgerStore(t *testing.T) {
	store, err := NewBadgerStore(filepath.Join(t.TempDir(), "badger"))
	require.NoError(t, err)
	defer store.Close()

	testStoreRoundTrip(t, store)
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "durable", []byte("payload")))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "durable")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
}

func TestCreateStore(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "memory store",
			config: Config{Type: StoreMemory},
		},
		{
			name:   "bolt store",
			config: Config{Type: StoreBolt, Path: filepath.Join(t.TempDir(), "bolt.db")},
		},
		{
			name:   "badger store",
			config: Config{Type: StoreBadger, Path: filepath.Join(t.TempDir(), "badger")},
		},
		{
			name:    "bolt without path",
			config:  Config{Type: StoreBolt},
			wantErr: true,
		},
		{
			name:    "unknown type",
			config:  Config{Type: "redis"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := CreateStore(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, store)
			store.Close()
		})
	}
}
