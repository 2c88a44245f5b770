package storage

import "context"

//go:generate moq -out replica_mock.go . ReplicaStorage

// ReplicaStorage persists the device replica identifier. The replica ID
// is generated once per installation and reused for every document so
// concurrent edits from different devices stay attributable.
type ReplicaStorage interface {
	// GetReplicaID returns the stored replica ID
	// Returns ErrReplicaNotFound if none has been saved yet
	GetReplicaID(ctx context.Context) (string, error)

	// SaveReplicaID stores the replica ID
	SaveReplicaID(ctx context.Context, id string) error
}
