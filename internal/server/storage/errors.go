package storage

import "errors"

// Common storage errors
var (
	// ErrDocumentNotFound indicates that no document exists for the key
	ErrDocumentNotFound = errors.New("document not found")

	// ErrBlobNotFound indicates that no blob exists for the ID
	ErrBlobNotFound = errors.New("blob not found")
)
