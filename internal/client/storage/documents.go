package storage

import "context"

//go:generate moq -out documents_mock.go . DocumentStorage

// DocumentStorage defines interface for storing parcel document state on
// the client. Values are opaque document saves; callers decode them with
// the document package.
type DocumentStorage interface {
	// SaveDocument stores or replaces the serialized document for a parcel key
	SaveDocument(ctx context.Context, parcelKey string, data []byte) error

	// GetDocument retrieves the serialized document for a parcel key
	// Returns ErrDocumentNotFound if no document exists
	GetDocument(ctx context.Context, parcelKey string) ([]byte, error)

	// ListKeys returns all parcel keys with a stored document
	ListKeys(ctx context.Context) ([]string, error)

	// DeleteDocument removes the stored document for a parcel key
	// Returns ErrDocumentNotFound if no document exists
	DeleteDocument(ctx context.Context, parcelKey string) error
}
