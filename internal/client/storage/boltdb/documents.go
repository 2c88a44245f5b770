package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/fieldsync/parcelsync/internal/client/storage"
)

// SaveDocument stores or replaces the serialized document for a parcel key
func (s *Storage) SaveDocument(ctx context.Context, parcelKey string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketDocuments)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put([]byte(parcelKey), data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetDocument retrieves the serialized document for a parcel key
func (s *Storage) GetDocument(ctx context.Context, parcelKey string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return storage.ErrDocumentNotFound
		}

		stored := bucket.Get([]byte(parcelKey))
		if stored == nil {
			return storage.ErrDocumentNotFound
		}

		// bbolt values are only valid inside the transaction
		data = make([]byte, len(stored))
		copy(data, stored)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}

// ListKeys returns all parcel keys with a stored document
func (s *Storage) ListKeys(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return keys, nil
}

// DeleteDocument removes the stored document for a parcel key
func (s *Storage) DeleteDocument(ctx context.Context, parcelKey string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return storage.ErrDocumentNotFound
		}

		if bucket.Get([]byte(parcelKey)) == nil {
			return storage.ErrDocumentNotFound
		}

		if err := bucket.Delete([]byte(parcelKey)); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		return nil
	})
}
