package models

import "time"

// Well-known metadata field names. The metadata region is an open string map
// (concurrent writers last-write-win per key inside the CRDT), but these two
// keys exist in every document from bootstrap on.
const (
	MetadataAuthor       = "author"
	MetadataLastModified = "lastModified"
)

// DefaultAuthor is the author value a freshly created document carries until
// a caller sets one.
const DefaultAuthor = "unknown"

// PhotoMetadata describes one photo attached to a parcel. Only the reference
// travels through the replicated document; the binary content is owned by the
// blob store and addressed by URI. ID is the de-duplication key: appending
// the same ID twice is a no-op, and concurrent appends of distinct IDs from
// different replicas all survive the merge.
type PhotoMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	ID        string    `json:"id"`
	Caption   string    `json:"caption"`
	URI       string    `json:"uri"`
}

// ParcelView is the plain snapshot of a parcel document, detached from the
// CRDT state. Used for presentation and for the sync response's data field.
type ParcelView struct {
	Metadata map[string]string `json:"metadata"`
	Notes    string            `json:"notes"`
	Photos   []PhotoMetadata   `json:"photos"`
}
