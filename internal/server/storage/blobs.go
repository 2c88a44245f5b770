package storage

import "context"

//go:generate moq -out blobs_mock.go . BlobStorage

// BlobStorage persists photo content. Blobs are immutable: a given ID is
// written once and never changes, so overwrites with identical content
// are harmless replays.
type BlobStorage interface {
	// SaveBlob stores content under id with its hex blake2b-256 checksum
	SaveBlob(ctx context.Context, id string, content []byte, checksum string) error

	// GetBlob returns the content and checksum for id
	// Returns ErrBlobNotFound if no blob exists
	GetBlob(ctx context.Context, id string) ([]byte, string, error)
}
