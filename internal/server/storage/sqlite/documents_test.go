package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsync/parcelsync/internal/server/storage"
)

func TestSaveDocumentAndGet(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	err := s.SaveDocument(ctx, "parcels", "parcel-001", []byte("state-v1"))
	require.NoError(t, err)

	data, err := s.GetDocument(ctx, "parcels", "parcel-001")
	require.NoError(t, err)
	assert.Equal(t, []byte("state-v1"), data)
}

func TestSaveDocumentOverwrites(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, "parcels", "parcel-001", []byte("state-v1")))
	require.NoError(t, s.SaveDocument(ctx, "parcels", "parcel-001", []byte("state-v2")))

	data, err := s.GetDocument(ctx, "parcels", "parcel-001")
	require.NoError(t, err)
	assert.Equal(t, []byte("state-v2"), data)
}

func TestGetDocumentNotFound(t *testing.T) {
	s := createTestStorage(t)

	_, err := s.GetDocument(context.Background(), "parcels", "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestDocumentsScopedByCollection(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, "parcels", "parcel-001", []byte("a")))
	require.NoError(t, s.SaveDocument(ctx, "archive", "parcel-001", []byte("b")))

	data, err := s.GetDocument(ctx, "parcels", "parcel-001")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	data, err = s.GetDocument(ctx, "archive", "parcel-001")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), data)
}

func TestListDocuments(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, "parcels", "parcel-002", []byte("b")))
	require.NoError(t, s.SaveDocument(ctx, "parcels", "parcel-001", []byte("a")))
	require.NoError(t, s.SaveDocument(ctx, "archive", "parcel-003", []byte("c")))

	keys, err := s.ListDocuments(ctx, "parcels")
	require.NoError(t, err)
	assert.Equal(t, []string{"parcel-001", "parcel-002"}, keys)
}

func TestListDocumentsEmpty(t *testing.T) {
	s := createTestStorage(t)

	keys, err := s.ListDocuments(context.Background(), "parcels")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
