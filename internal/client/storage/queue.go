package storage

import (
	"context"

	"github.com/fieldsync/parcelsync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage persists the pending operation queue so queued work
// survives process restarts. The queue is stored as a single ordered
// list; order is enqueue order and must be preserved.
type QueueStorage interface {
	// SaveQueue replaces the persisted queue with ops
	SaveQueue(ctx context.Context, ops []models.PendingOperation) error

	// GetQueue returns the persisted queue in enqueue order
	// Returns an empty slice when nothing is queued
	GetQueue(ctx context.Context) ([]models.PendingOperation, error)
}
