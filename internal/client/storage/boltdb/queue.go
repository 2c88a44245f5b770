package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/fieldsync/parcelsync/internal/client/storage"
	"github.com/fieldsync/parcelsync/internal/models"
)

// queueKey is the single key holding the ordered operation list
var queueKey = []byte("pending")

// SaveQueue replaces the persisted queue with ops.
// The whole queue is written as one JSON array so enqueue order survives
// restarts without extra bookkeeping.
func (s *Storage) SaveQueue(ctx context.Context, ops []models.PendingOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketQueue)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put(queueKey, data); err != nil {
			return fmt.Errorf("failed to save queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetQueue returns the persisted queue in enqueue order
func (s *Storage) GetQueue(ctx context.Context) ([]models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	ops := []models.PendingOperation{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		data := bucket.Get(queueKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &ops); err != nil {
			return fmt.Errorf("failed to unmarshal queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	return ops, nil
}
