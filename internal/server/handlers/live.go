package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/automerge/automerge-go"
	"github.com/gorilla/websocket"

	"github.com/fieldsync/parcelsync/internal/document"
	"github.com/fieldsync/parcelsync/internal/server/storage"
)

// livePumpInterval is how often the write pump looks for new outbound
// sync messages once the initial exchange has drained.
const livePumpInterval = time.Second

// LiveHandler serves the websocket live-sync channel. Each connection
// gets its own automerge sync state over the stored document; sync
// messages ride binary frames in both directions.
type LiveHandler struct {
	logger   *slog.Logger
	storage  storage.DocumentStorage
	sync     *SyncHandler
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new live sync handler
func NewLiveHandler(logger *slog.Logger, store storage.DocumentStorage, replicaID string) *LiveHandler {
	return &LiveHandler{
		logger:  logger,
		storage: store,
		sync:    NewSyncHandler(logger, store, replicaID),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleLive handles GET /api/v1/{collection}/{key}/live
func (h *LiveHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, parcelKey, ok := h.sync.parcelVars(w, r)
	if !ok {
		return
	}

	doc, err := h.sync.loadOrCreate(ctx, collection, parcelKey)
	if err != nil {
		h.logger.Error("Failed to load document", "error", err, "parcel_key", parcelKey)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("Live sync started", "collection", collection, "parcel_key", parcelKey)

	state := automerge.NewSyncState(doc.Doc())
	h.pump(ctx, conn, state, collection, parcelKey, doc)

	h.logger.Info("Live sync ended", "collection", collection, "parcel_key", parcelKey)
}

// pump runs the read and write loops until either side fails or the
// request context ends.
func (h *LiveHandler) pump(ctx context.Context, conn *websocket.Conn, state *automerge.SyncState, collection, parcelKey string, doc *document.Parcel) {
	// GenerateMessage and ReceiveMessage share the sync state
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer conn.Close()
		for {
			if err := h.readMessage(ctx, conn, state, &mu, collection, parcelKey, doc); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.logger.Debug("Live read loop ended", "error", err)
				}
				return
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer conn.Close()

		ticker := time.NewTicker(livePumpInterval)
		defer ticker.Stop()

		for {
			if err := h.writeMessages(conn, state, &mu); err != nil {
				h.logger.Debug("Live write loop ended", "error", err)
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
}

// readMessage receives one inbound sync message and persists the
// document state it produced. The persist runs under the per-key lock
// shared with the HTTP sync handler and re-merges the stored state
// first, so a concurrent HTTP sync for the same parcel is never
// overwritten by this connection's older snapshot.
func (h *LiveHandler) readMessage(ctx context.Context, conn *websocket.Conn, state *automerge.SyncState, mu *sync.Mutex, collection, parcelKey string, doc *document.Parcel) error {
	mt, p, err := conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("failed to read message: %w", err)
	}
	if mt != websocket.BinaryMessage {
		return nil
	}

	mu.Lock()
	_, err = state.ReceiveMessage(p)
	mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to receive sync message: %w", err)
	}

	unlock := h.sync.locks.lock(collection + "/" + parcelKey)
	defer unlock()

	stored, err := h.storage.GetDocument(ctx, collection, parcelKey)
	if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
		return fmt.Errorf("failed to load stored document: %w", err)
	}
	if stored != nil {
		if err := doc.MergeSaved(stored); err != nil {
			return fmt.Errorf("failed to merge stored document: %w", err)
		}
	}

	if err := h.storage.SaveDocument(ctx, collection, parcelKey, doc.Save()); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}

	return nil
}

// writeMessages drains all pending outbound sync messages
func (h *LiveHandler) writeMessages(conn *websocket.Conn, state *automerge.SyncState, mu *sync.Mutex) error {
	for {
		mu.Lock()
		msg, valid := state.GenerateMessage()
		mu.Unlock()
		if msg == nil {
			return nil
		}

		if err := conn.WriteMessage(websocket.BinaryMessage, msg.Bytes()); err != nil {
			return fmt.Errorf("failed to write sync message: %w", err)
		}
		if !valid {
			return nil
		}
	}
}
