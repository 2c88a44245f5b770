package storage

import "errors"

// Common client storage errors
var (
	// ErrDocumentNotFound indicates that no document exists for the parcel key
	ErrDocumentNotFound = errors.New("document not found")

	// ErrReplicaNotFound indicates that no replica ID has been saved yet
	ErrReplicaNotFound = errors.New("replica ID not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
