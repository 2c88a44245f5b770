package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/fieldsync/parcelsync/internal/client/api"
	"github.com/fieldsync/parcelsync/internal/document"
	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/internal/server/storage"
	"github.com/fieldsync/parcelsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memDocStore is an in-memory DocumentStorage for handler tests
type memDocStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemDocStore() *memDocStore {
	return &memDocStore{docs: make(map[string][]byte)}
}

func (m *memDocStore) SaveDocument(_ context.Context, collection, parcelKey string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection+"/"+parcelKey] = data
	return nil
}

func (m *memDocStore) GetDocument(_ context.Context, collection, parcelKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[collection+"/"+parcelKey]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	return data, nil
}

func (m *memDocStore) ListDocuments(_ context.Context, collection string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.docs {
		if len(k) > len(collection) && k[:len(collection)+1] == collection+"/" {
			keys = append(keys, k[len(collection)+1:])
		}
	}
	return keys, nil
}

func testRouter(store storage.DocumentStorage) *mux.Router {
	h := NewSyncHandler(testLogger(), store, "server")

	r := mux.NewRouter()
	r.UseEncodedPath()
	r.HandleFunc("/api/v1/{collection}/{key}/sync", h.HandleSync).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/{collection}", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/{collection}/{key}", h.HandleView).Methods(http.MethodGet)
	return r
}

func postSync(t *testing.T, router *mux.Router, parcelKey, update string) (*httptest.ResponseRecorder, *api.SyncResponse) {
	t.Helper()

	body, err := json.Marshal(api.SyncRequest{Update: update})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels/"+parcelKey+"/sync", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return rec, nil
	}

	var resp api.SyncResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, &resp
}

func TestHandleSyncPullCreatesDocument(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)

	rec, resp := postSync(t, router, "parcel-001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, models.DefaultAuthor, resp.Data.Metadata[models.MetadataAuthor])
	assert.Empty(t, resp.Data.Notes)
	assert.NotEmpty(t, resp.StateVector)

	// The materialized document is persisted
	_, err := store.GetDocument(context.Background(), "parcels", "parcel-001")
	assert.NoError(t, err)
}

func TestHandleSyncAppliesUpdate(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)

	local, err := document.New("parcel-001", "device-1")
	require.NoError(t, err)
	require.NoError(t, local.SetNotes("two-story colonial, new roof"))

	rec, resp := postSync(t, router, "parcel-001", document.EncodeFull(local))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "two-story colonial, new roof", resp.Data.Notes)

	// A second pull-only sync sees the merged state
	rec, resp = postSync(t, router, "parcel-001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "two-story colonial, new roof", resp.Data.Notes)
}

func TestHandleSyncMergesConcurrentUpdates(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)

	docA, err := document.New("parcel-001", "device-a")
	require.NoError(t, err)
	require.NoError(t, docA.SetMetadataField("inspector", "pat"))

	docB, err := document.New("parcel-001", "device-b")
	require.NoError(t, err)
	require.NoError(t, docB.AppendPhoto(models.PhotoMetadata{
		ID:      "photo-1",
		Caption: "front elevation",
		URI:     api.BlobURI("photo-1"),
	}))

	_, resp := postSync(t, router, "parcel-001", document.EncodeFull(docA))
	require.NotNil(t, resp)
	_, resp = postSync(t, router, "parcel-001", document.EncodeFull(docB))
	require.NotNil(t, resp)

	assert.Equal(t, "pat", resp.Data.Metadata["inspector"])
	require.Len(t, resp.Data.Photos, 1)
	assert.Equal(t, "front elevation", resp.Data.Photos[0].Caption)
}

func TestHandleSyncSlashParcelKey(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)
	const key = "county/block-17/lot-0042"

	local, err := document.New(key, "device-1")
	require.NoError(t, err)
	require.NoError(t, local.SetNotes("rear setback disputed"))

	body, err := json.Marshal(api.SyncRequest{Update: document.EncodeFull(local)})
	require.NoError(t, err)

	// the exact path the field client builds for a slash-bearing key
	path := httpclient.SyncPath("parcels", key)
	require.Equal(t, "/api/v1/parcels/county%2Fblock-17%2Flot-0042/sync", path)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SyncResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "rear setback disputed", resp.Data.Notes)

	// the document is stored under the decoded key
	_, err = store.GetDocument(context.Background(), "parcels", key)
	assert.NoError(t, err)

	// and the view route resolves the same escaped path
	req = httptest.NewRequest(http.MethodGet, "/api/v1/parcels/"+url.PathEscape(key), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSyncConcurrentSameKey(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)

	// one document per writer, each with a distinct concurrent edit
	const writers = 8
	docs := make([]*document.Parcel, writers)
	for i := range docs {
		d, err := document.New("parcel-001", fmt.Sprintf("device-%d", i))
		require.NoError(t, err)
		require.NoError(t, d.SetMetadataField(fmt.Sprintf("field-%d", i), "set"))
		docs[i] = d
	}

	var wg sync.WaitGroup
	for _, d := range docs {
		wg.Add(1)
		go func(d *document.Parcel) {
			defer wg.Done()
			body, err := json.Marshal(api.SyncRequest{Update: document.EncodeFull(d)})
			if err != nil {
				return
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels/parcel-001/sync", bytes.NewReader(body))
			router.ServeHTTP(httptest.NewRecorder(), req)
		}(d)
	}
	wg.Wait()

	// every writer's edit survived; no save overwrote another merge
	_, resp := postSync(t, router, "parcel-001", "")
	require.NotNil(t, resp)
	for i := 0; i < writers; i++ {
		assert.Equal(t, "set", resp.Data.Metadata[fmt.Sprintf("field-%d", i)], "edit %d lost", i)
	}
}

func TestHandleSyncCorruptUpdate(t *testing.T) {
	router := testRouter(newMemDocStore())

	rec, _ := postSync(t, router, "parcel-001", "!!!not-base64!!!")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSyncInvalidParcelKey(t *testing.T) {
	router := testRouter(newMemDocStore())

	body, _ := json.Marshal(api.SyncRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels/%20/sync", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSyncStorageError(t *testing.T) {
	store := &storage.DocumentStorageMock{
		GetDocumentFunc: func(ctx context.Context, collection, parcelKey string) ([]byte, error) {
			return nil, assert.AnError
		},
	}
	router := testRouter(store)

	rec, _ := postSync(t, router, "parcel-001", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleViewNotFound(t *testing.T) {
	router := testRouter(newMemDocStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parcels/parcel-001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleView(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)

	local, err := document.New("parcel-001", "device-1")
	require.NoError(t, err)
	require.NoError(t, local.SetNotes("vacant lot"))
	require.NoError(t, store.SaveDocument(context.Background(), "parcels", "parcel-001", local.Save()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parcels/parcel-001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view api.ParcelView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "vacant lot", view.Notes)
}

func TestHandleList(t *testing.T) {
	store := newMemDocStore()
	router := testRouter(store)

	_, resp := postSync(t, router, "parcel-001", "")
	require.NotNil(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parcels", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var keys []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&keys))
	assert.Equal(t, []string{"parcel-001"}, keys)
}

func TestHandleListEmpty(t *testing.T) {
	router := testRouter(newMemDocStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parcels", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
