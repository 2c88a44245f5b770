package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldsync/parcelsync/internal/server/storage"
)

// SaveBlob stores photo content under its identifier. Blobs are
// content-addressed and immutable, so re-uploading an existing id is a
// no-op rather than an error.
func (s *Storage) SaveBlob(ctx context.Context, id string, content []byte, checksum string) error {
	query := `
		INSERT INTO blobs (id, content, checksum)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, id, content, checksum); err != nil {
		return fmt.Errorf("failed to save blob: %w", err)
	}

	return nil
}

// GetBlob returns the stored content and checksum for a blob.
func (s *Storage) GetBlob(ctx context.Context, id string) ([]byte, string, error) {
	query := `SELECT content, checksum FROM blobs WHERE id = ?`

	var (
		content  []byte
		checksum string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&content, &checksum)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", storage.ErrBlobNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get blob: %w", err)
	}

	return content, checksum, nil
}
