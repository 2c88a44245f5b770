// Package api defines the wire contracts shared by the field client, the
// sync server and any other layer (mobile UI, web dashboard) that talks to
// them. Everything here is transport-agnostic JSON: encoded CRDT updates are
// base64 strings and can ride an HTTP body or a websocket frame equally well.
package api

import "strings"

// SyncRequest carries one encoded document update from a replica to the
// server. An empty Update is a pull: the server applies nothing and only
// returns its current state.
type SyncRequest struct {
	// Update is the base64-wrapped binary CRDT update (full snapshot or
	// incremental bundle; the receiver cannot and need not tell them apart).
	Update string `json:"update"`
}

// SyncResponse is the server's answer to a sync: the merged document both as
// a plain JSON view for presentation layers and as a full-state encoding the
// client applies for the reciprocal merge.
type SyncResponse struct {
	// Data is the plain JSON rendering of the merged document.
	Data ParcelView `json:"data"`
	// StateVector is the base64 full-state encoding of the merged document.
	StateVector string `json:"state_vector"`
}

// ParcelView is the plain (non-CRDT) rendering of a parcel document.
type ParcelView struct {
	Metadata map[string]string `json:"metadata"`
	Notes    string            `json:"notes"`
	Photos   []PhotoMetadata   `json:"photos"`
}

// PhotoMetadata is the cross-network photo record. The binary content lives
// in the blob store; the document only ever references it by URI. Timestamp
// is ISO-8601 (RFC 3339).
type PhotoMetadata struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	URI       string `json:"uri"`
	Timestamp string `json:"timestamp"`
}

// BlobResponse is returned by a blob upload with the URI under which the
// content is now addressable.
type BlobResponse struct {
	URI string `json:"uri"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ChecksumHeader carries the hex blake2b-256 checksum of a blob upload.
const ChecksumHeader = "X-Checksum"

// BlobURI returns the canonical URI for a stored blob. Clients that
// queue an upload offline record the same URI the server will assign,
// so documents reference the blob identically on both sides.
func BlobURI(blobID string) string {
	return "blob://" + blobID
}

// BlobPath returns the HTTP path for a blob. The ID is a UUID and never
// needs escaping, but queued operations store the path verbatim so it is
// built in one place.
func BlobPath(blobID string) string {
	return "/api/v1/blobs/" + blobID
}

// BlobIDFromPath is the inverse of BlobPath. ok is false when the path
// does not address a blob.
func BlobIDFromPath(path string) (string, bool) {
	id := strings.TrimPrefix(path, "/api/v1/blobs/")
	if id == path || id == "" {
		return "", false
	}
	return id, true
}
