package handlers

import (
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/blake2b"

	"github.com/fieldsync/parcelsync/internal/server/storage"
	"github.com/fieldsync/parcelsync/pkg/api"
)

// maxBlobSize caps a single photo upload at 32 MiB
const maxBlobSize = 32 << 20

// BlobHandler stores and serves photo content. Blobs are immutable and
// addressed by the client-assigned UUID.
type BlobHandler struct {
	logger  *slog.Logger
	storage storage.BlobStorage
}

// NewBlobHandler creates a new blob handler
func NewBlobHandler(logger *slog.Logger, store storage.BlobStorage) *BlobHandler {
	return &BlobHandler{
		logger:  logger,
		storage: store,
	}
}

// HandleUpload handles PUT /api/v1/blobs/{id}. The body is the raw
// content; the X-Checksum header must carry its hex blake2b-256 digest.
func (h *BlobHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	blobID := mux.Vars(r)["id"]

	content, err := io.ReadAll(io.LimitReader(r.Body, maxBlobSize+1))
	if err != nil {
		h.logger.Warn("Failed to read blob body", "error", err, "blob_id", blobID)
		writeError(w, http.StatusBadRequest, "invalid_request", "failed to read body")
		return
	}
	if len(content) == 0 {
		writeError(w, http.StatusBadRequest, "empty_blob", "blob content is empty")
		return
	}
	if len(content) > maxBlobSize {
		writeError(w, http.StatusRequestEntityTooLarge, "blob_too_large", "blob exceeds size limit")
		return
	}

	checksum := r.Header.Get(api.ChecksumHeader)
	if checksum == "" {
		writeError(w, http.StatusBadRequest, "missing_checksum", api.ChecksumHeader+" header is required")
		return
	}

	sum := blake2b.Sum256(content)
	if hex.EncodeToString(sum[:]) != checksum {
		h.logger.Warn("Blob checksum mismatch", "blob_id", blobID)
		writeError(w, http.StatusBadRequest, "checksum_mismatch", "content does not match checksum")
		return
	}

	if err := h.storage.SaveBlob(r.Context(), blobID, content, checksum); err != nil {
		h.logger.Error("Failed to save blob", "error", err, "blob_id", blobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	h.logger.Info("Blob stored", "blob_id", blobID, "size", len(content))

	writeJSON(w, h.logger, http.StatusCreated, api.BlobResponse{URI: api.BlobURI(blobID)})
}

// HandleDownload handles GET /api/v1/blobs/{id} and streams the stored
// content with its checksum header.
func (h *BlobHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	blobID := mux.Vars(r)["id"]

	content, checksum, err := h.storage.GetBlob(r.Context(), blobID)
	if errors.Is(err, storage.ErrBlobNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "blob not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get blob", "error", err, "blob_id", blobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(api.ChecksumHeader, checksum)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		h.logger.Error("Failed to write blob", "error", err, "blob_id", blobID)
	}
}
