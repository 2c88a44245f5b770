package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/fieldsync/parcelsync/internal/document"
	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/internal/server/storage"
	"github.com/fieldsync/parcelsync/internal/validation"
	"github.com/fieldsync/parcelsync/pkg/api"
)

// SyncHandler merges incoming document updates and serves parcel views.
type SyncHandler struct {
	logger    *slog.Logger
	storage   storage.DocumentStorage
	replicaID string
	locks     *keyLocks
}

// NewSyncHandler creates a new sync handler. replicaID is the server's
// own stable replica identity, used when it materializes a document.
func NewSyncHandler(logger *slog.Logger, store storage.DocumentStorage, replicaID string) *SyncHandler {
	return &SyncHandler{
		logger:    logger,
		storage:   store,
		replicaID: replicaID,
		locks:     newKeyLocks(),
	}
}

// keyLocks serializes writers per parcel. Load-merge-save is not atomic
// against the storage layer, so two concurrent syncs for the same key
// must not interleave or the second save silently discards the first
// merge.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock func.
func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// HandleSync handles POST /api/v1/{collection}/{key}/sync.
// The body carries one encoded update; an empty update is a pull. The
// response is always the merged document, as a plain view plus a
// full-state encoding for the client's reciprocal merge.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, parcelKey, ok := h.parcelVars(w, r)
	if !ok {
		return
	}

	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sync request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	unlock := h.locks.lock(collection + "/" + parcelKey)
	defer unlock()

	doc, err := h.loadOrCreate(ctx, collection, parcelKey)
	if err != nil {
		h.logger.Error("Failed to load document", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	if req.Update != "" {
		if err := document.Apply(doc, req.Update); err != nil {
			if errors.Is(err, document.ErrCorruptUpdate) {
				h.logger.Warn("Rejected corrupt update", "parcel_key", parcelKey, "error", err)
				writeError(w, http.StatusBadRequest, "corrupt_update", "update could not be decoded")
				return
			}
			h.logger.Error("Failed to apply update", "error", err, "parcel_key", parcelKey)
			writeError(w, http.StatusInternalServerError, "internal_error", "")
			return
		}
	}

	if err := h.storage.SaveDocument(ctx, collection, parcelKey, doc.Save()); err != nil {
		h.logger.Error("Failed to save document", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	view, err := doc.View()
	if err != nil {
		h.logger.Error("Failed to render view", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.SyncResponse{
		Data:        apiView(view),
		StateVector: document.EncodeFull(doc),
	})

	h.logger.Info("Sync completed",
		"collection", collection,
		"parcel_key", parcelKey,
		"pull_only", req.Update == "")
}

// HandleView handles GET /api/v1/{collection}/{key} and returns the
// plain JSON view of a parcel.
func (h *SyncHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, parcelKey, ok := h.parcelVars(w, r)
	if !ok {
		return
	}

	data, err := h.storage.GetDocument(ctx, collection, parcelKey)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "parcel not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get document", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	doc, err := document.Load(parcelKey, h.replicaID, data)
	if err != nil {
		h.logger.Error("Failed to load document", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	view, err := doc.View()
	if err != nil {
		h.logger.Error("Failed to render view", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, apiView(view))
}

// HandleList handles GET /api/v1/{collection} and returns the parcel
// keys known to the server.
func (h *SyncHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	collection, err := url.PathUnescape(mux.Vars(r)["collection"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_collection", "malformed collection escape")
		return
	}
	if err := validation.ValidateCollection(collection); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_collection", err.Error())
		return
	}

	keys, err := h.storage.ListDocuments(r.Context(), collection)
	if err != nil {
		h.logger.Error("Failed to list documents", "error", err, "collection", collection)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if keys == nil {
		keys = []string{}
	}

	writeJSON(w, h.logger, http.StatusOK, keys)
}

// parcelVars extracts and validates the collection and parcel key
// route variables, writing the error response itself on failure.
//
// The router matches on the encoded path, so a parcel key containing
// slashes arrives as one percent-escaped segment ("county%2Flot") and
// the vars must be unescaped here.
func (h *SyncHandler) parcelVars(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	vars := mux.Vars(r)

	collection, err := url.PathUnescape(vars["collection"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_collection", "malformed collection escape")
		return "", "", false
	}
	parcelKey, err := url.PathUnescape(vars["key"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parcel_key", "malformed parcel key escape")
		return "", "", false
	}

	if err := validation.ValidateCollection(collection); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_collection", err.Error())
		return "", "", false
	}
	if err := validation.ValidateParcelKey(parcelKey); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parcel_key", err.Error())
		return "", "", false
	}

	return collection, parcelKey, true
}

// loadOrCreate returns the stored document for a parcel, materializing
// a fresh one when the server has never seen the key.
func (h *SyncHandler) loadOrCreate(ctx context.Context, collection, parcelKey string) (*document.Parcel, error) {
	data, err := h.storage.GetDocument(ctx, collection, parcelKey)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		return document.New(parcelKey, h.replicaID)
	}
	if err != nil {
		return nil, err
	}
	return document.Load(parcelKey, h.replicaID, data)
}

// apiView converts the internal view to its wire form
func apiView(view *models.ParcelView) api.ParcelView {
	photos := make([]api.PhotoMetadata, 0, len(view.Photos))
	for _, p := range view.Photos {
		photos = append(photos, api.PhotoMetadata{
			ID:        p.ID,
			Caption:   p.Caption,
			URI:       p.URI,
			Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return api.ParcelView{
		Metadata: view.Metadata,
		Notes:    view.Notes,
		Photos:   photos,
	}
}
