package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/fieldsync/parcelsync/internal/client/storage"
)

// replicaKey stores the device replica identifier
var replicaKey = []byte("id")

// GetReplicaID returns the stored replica ID
func (s *Storage) GetReplicaID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var id string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReplica)
		if bucket == nil {
			return storage.ErrReplicaNotFound
		}

		data := bucket.Get(replicaKey)
		if data == nil {
			return storage.ErrReplicaNotFound
		}

		id = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return id, nil
}

// SaveReplicaID stores the replica ID
func (s *Storage) SaveReplicaID(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketReplica)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put(replicaKey, []byte(id)); err != nil {
			return fmt.Errorf("failed to save replica ID: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
