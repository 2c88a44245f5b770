package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fieldsync/parcelsync/internal/models"
	"github.com/fieldsync/parcelsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the server operations the client layers depend on.
// The sync service, the offline queue and the photo coordinator all talk
// to the server through this interface.
type ClientAPI interface {
	// Sync pushes one encoded update for a parcel and returns the server's
	// merged state. An empty update is a pull.
	Sync(ctx context.Context, collection, parcelKey, update string) (*api.SyncResponse, error)

	// GetView fetches the plain JSON rendering of a parcel document
	GetView(ctx context.Context, collection, parcelKey string) (*api.ParcelView, error)

	// UploadBlob stores binary photo content under blobID.
	// checksum is the hex blake2b-256 digest of content.
	UploadBlob(ctx context.Context, blobID string, content []byte, checksum string) (*api.BlobResponse, error)

	// GetBlob fetches binary photo content by blob ID
	GetBlob(ctx context.Context, blobID string) ([]byte, error)

	// DoOperation replays a queued operation verbatim and returns the
	// raw response body
	DoOperation(ctx context.Context, op models.PendingOperation) ([]byte, error)

	// Health checks server availability
	Health(ctx context.Context) error
}

// Client represents the HTTP client for talking to the sync server
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client. authToken may be empty when the
// server runs without authentication.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// carry Authorization across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SyncPath builds the sync endpoint path for a parcel. Parcel keys may
// contain slashes (county/block/lot), so the key is a single escaped
// path segment.
func SyncPath(collection, parcelKey string) string {
	return fmt.Sprintf("/api/v1/%s/%s/sync", collection, url.PathEscape(parcelKey))
}

// Sync pushes one encoded update and returns the server's merged state
func (c *Client) Sync(ctx context.Context, collection, parcelKey, update string) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	req := api.SyncRequest{Update: update}
	err := c.doRequest(ctx, http.MethodPost, SyncPath(collection, parcelKey), req, &resp)
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// GetView fetches the plain JSON rendering of a parcel document
func (c *Client) GetView(ctx context.Context, collection, parcelKey string) (*api.ParcelView, error) {
	var resp api.ParcelView
	path := fmt.Sprintf("/api/v1/%s/%s", collection, url.PathEscape(parcelKey))
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get view request failed: %w", err)
	}
	return &resp, nil
}

// UploadBlob stores binary photo content under blobID
func (c *Client) UploadBlob(ctx context.Context, blobID string, content []byte, checksum string) (*api.BlobResponse, error) {
	path := fmt.Sprintf("/api/v1/blobs/%s", url.PathEscape(blobID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(api.ChecksumHeader, checksum)
	c.setAuth(req)

	respBody, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("blob upload failed: %w", err)
	}

	var resp api.BlobResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// GetBlob fetches binary photo content by blob ID
func (c *Client) GetBlob(ctx context.Context, blobID string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/blobs/%s", url.PathEscape(blobID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuth(req)

	respBody, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("blob download failed: %w", err)
	}
	return respBody, nil
}

// DoOperation replays a queued operation verbatim
func (c *Client) DoOperation(ctx context.Context, op models.PendingOperation) ([]byte, error) {
	var bodyReader io.Reader
	if len(op.Payload) > 0 {
		bodyReader = bytes.NewReader(op.Payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, c.baseURL+op.Target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// a checksum marks a binary payload (queued blob upload)
	if op.Checksum != "" {
		req.Header.Set("Content-Type", "application/octet-stream")
		req.Header.Set(api.ChecksumHeader, op.Checksum)
	} else if len(op.Payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req)

	respBody, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("operation %s failed: %w", op.ID, err)
	}
	return respBody, nil
}

// Health checks server availability
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// doRequest performs a JSON request/response round trip
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req)

	respBody, err := c.do(req)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// do sends the request and maps non-2xx responses to *APIError
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		} else {
			apiErr.Message = string(respBody)
		}
		return nil, apiErr
	}

	return respBody, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
}
