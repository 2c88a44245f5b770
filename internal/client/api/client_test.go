package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, "token-123")

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestSyncPath_EscapesParcelKey(t *testing.T) {
	assert.Equal(t, "/api/v1/parcels/parcel-1/sync", SyncPath("parcels", "parcel-1"))
	assert.Equal(t, "/api/v1/parcels/king%2F2026%2Flot-42/sync", SyncPath("parcels", "king/2026/lot-42"))
}

func TestClient_Sync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/parcels/parcel-1/sync", r.URL.EscapedPath())
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var req api.SyncRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "ZW5jb2RlZA==", req.Update)

		resp := api.SyncResponse{
			Data: api.ParcelView{
				Notes:    "roof inspected",
				Metadata: map[string]string{"author": "jmartin"},
			},
			StateVector: "bWVyZ2Vk",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "token-123")

	resp, err := client.Sync(context.Background(), "parcels", "parcel-1", "ZW5jb2RlZA==")
	require.NoError(t, err)
	assert.Equal(t, "roof inspected", resp.Data.Notes)
	assert.Equal(t, "bWVyZ2Vk", resp.StateVector)
}

func TestClient_Sync_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "invalid_update",
			Message: "corrupt update payload",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Sync(context.Background(), "parcels", "parcel-1", "not-base64!!")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "corrupt update")
	assert.True(t, IsPermanent(err))
}

func TestClient_GetView(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/parcels/parcel-1", r.URL.EscapedPath())

		_ = json.NewEncoder(w).Encode(api.ParcelView{
			Notes: "foundation cracked",
			Photos: []api.PhotoMetadata{
				{ID: "photo-1", Caption: "north wall", URI: "blob://photo-1"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	view, err := client.GetView(context.Background(), "parcels", "parcel-1")
	require.NoError(t, err)
	assert.Equal(t, "foundation cracked", view.Notes)
	require.Len(t, view.Photos, 1)
	assert.Equal(t, "photo-1", view.Photos[0].ID)
}

func TestClient_UploadBlob(t *testing.T) {
	content := []byte{0xff, 0xd8, 0xff, 0xe0} // JPEG magic
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/blobs/blob-1", r.URL.EscapedPath())
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc123", r.Header.Get(api.ChecksumHeader))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.BlobResponse{URI: "blob://blob-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	resp, err := client.UploadBlob(context.Background(), "blob-1", content, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "blob://blob-1", resp.URI)
}

func TestClient_GetBlob(t *testing.T) {
	content := []byte("binary photo bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/blobs/blob-1", r.URL.EscapedPath())
		_, _ = w.Write(content)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	got, err := client.GetBlob(context.Background(), "blob-1")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestClient_DoOperation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/parcels/parcel-1/sync", r.URL.EscapedPath())

		var req api.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cXVldWVk", req.Update)

		_ = json.NewEncoder(w).Encode(api.SyncResponse{StateVector: "bWVyZ2Vk"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	payload, err := json.Marshal(api.SyncRequest{Update: "cXVldWVk"})
	require.NoError(t, err)

	body, err := client.DoOperation(context.Background(), models.PendingOperation{
		ID:      "op-1",
		Method:  http.MethodPost,
		Target:  "/api/v1/parcels/parcel-1/sync",
		Payload: payload,
	})
	require.NoError(t, err)

	var resp api.SyncResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "bWVyZ2Vk", resp.StateVector)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	assert.NoError(t, client.Health(context.Background()))
}

func TestClient_Health_Down(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.Health(context.Background())
	require.Error(t, err)
	assert.False(t, IsPermanent(err)) // 5xx is transient
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(&APIError{StatusCode: http.StatusBadRequest}))
	assert.True(t, IsPermanent(&APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsPermanent(&APIError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, IsPermanent(errors.New("connection refused")))
	assert.False(t, IsPermanent(nil))
}
