// Package photos coordinates photo capture with blob upload. A photo's
// binary content never enters the parcel document; it is uploaded to the
// blob store first and only the returned URI plus metadata is recorded,
// which keeps documents small enough to sync over bad links.
package photos

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/crypto/blake2b"

	clientapi "github.com/fieldsync/parcelsync/internal/client/api"
	"github.com/fieldsync/parcelsync/internal/document"
	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/pkg/api"
)

//go:generate moq -out blobstore_mock.go . BlobStore

// BlobStore uploads photo content. api.Client satisfies this.
type BlobStore interface {
	UploadBlob(ctx context.Context, blobID string, content []byte, checksum string) (*api.BlobResponse, error)
}

const (
	uploadRetries = 3
	uploadBackoff = 500 * time.Millisecond
)

// Coordinator attaches photos to parcel documents.
type Coordinator struct {
	blobs  BlobStore
	logger *slog.Logger
}

// NewCoordinator creates a photo coordinator
func NewCoordinator(blobs BlobStore, logger *slog.Logger) *Coordinator {
	return &Coordinator{blobs: blobs, logger: logger}
}

// AddPhoto uploads content to the blob store and appends the photo
// record to the parcel document. The upload is retried with exponential
// backoff on transient failures; a server rejection fails immediately.
// The document is only touched after the upload succeeds, so a document
// never references a blob that does not exist.
func (c *Coordinator) AddPhoto(ctx context.Context, p *document.Parcel, caption string, content []byte, takenAt time.Time) (models.PhotoMetadata, error) {
	id := uuid.NewString()

	sum := blake2b.Sum256(content)
	checksum := hex.EncodeToString(sum[:])

	var uri string
	backoff := retry.WithMaxRetries(uploadRetries, retry.NewExponential(uploadBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.blobs.UploadBlob(ctx, id, content, checksum)
		if err != nil {
			if clientapi.IsPermanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}
		uri = resp.URI
		return nil
	})
	if err != nil {
		return models.PhotoMetadata{}, fmt.Errorf("blob upload failed for photo %s: %w", id, err)
	}

	photo := models.PhotoMetadata{
		ID:        id,
		Caption:   caption,
		URI:       uri,
		Timestamp: takenAt.UTC(),
	}

	if err := p.AppendPhoto(photo); err != nil {
		return models.PhotoMetadata{}, fmt.Errorf("failed to record photo %s: %w", id, err)
	}

	c.logger.Info("Photo attached",
		"parcel_key", p.Key(),
		"photo_id", id,
		"uri", uri,
		"size_bytes", len(content))

	return photo, nil
}

// Checksum returns the hex blake2b-256 digest used to verify blob
// content end to end.
func Checksum(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}
