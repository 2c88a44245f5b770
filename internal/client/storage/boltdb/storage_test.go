package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/fieldsync/parcelsync/internal/client/storage"
)

// compile-time interface checks
var (
	_ storage.DocumentStorage = (*Storage)(nil)
	_ storage.QueueStorage    = (*Storage)(nil)
	_ storage.ReplicaStorage  = (*Storage)(nil)
)

// createTestStorage opens a throwaway database for a single test
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// all buckets must exist after New
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocuments, bucketQueue, bucketReplica} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Close())

	// operations after Close return ErrStorageClosed
	store.db = nil
	err = store.SaveDocument(context.Background(), "parcel-1", []byte("data"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestClose_NilDB(t *testing.T) {
	store := &Storage{}
	assert.NoError(t, store.Close())
}
