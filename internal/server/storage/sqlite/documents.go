package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldsync/parcelsync/internal/server/storage"
)

// SaveDocument stores the full CRDT state for a parcel, replacing any
// previous version.
func (s *Storage) SaveDocument(ctx context.Context, collection, parcelKey string, data []byte) error {
	query := `
		INSERT INTO documents (collection, parcel_key, content)
		VALUES (?, ?, ?)
		ON CONFLICT(collection, parcel_key) DO UPDATE SET
			content = excluded.content,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.db.ExecContext(ctx, query, collection, parcelKey, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// GetDocument returns the stored CRDT state for a parcel.
func (s *Storage) GetDocument(ctx context.Context, collection, parcelKey string) ([]byte, error) {
	query := `SELECT content FROM documents WHERE collection = ? AND parcel_key = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection, parcelKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return data, nil
}

// ListDocuments returns the parcel keys of every document in a collection.
func (s *Storage) ListDocuments(ctx context.Context, collection string) ([]string, error) {
	query := `SELECT parcel_key FROM documents WHERE collection = ? ORDER BY parcel_key`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan parcel key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return keys, nil
}
