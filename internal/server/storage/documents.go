package storage

import "context"

//go:generate moq -out documents_mock.go . DocumentStorage

// DocumentStorage persists merged parcel documents on the server.
// Values are opaque document saves; the handlers decode and merge them
// with the document package before writing back.
type DocumentStorage interface {
	// SaveDocument creates or replaces the stored document
	SaveDocument(ctx context.Context, collection, parcelKey string, data []byte) error

	// GetDocument retrieves the stored document
	// Returns ErrDocumentNotFound if no document exists
	GetDocument(ctx context.Context, collection, parcelKey string) ([]byte, error)

	// ListDocuments returns all parcel keys in a collection
	ListDocuments(ctx context.Context, collection string) ([]string, error)
}
