package api

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx HTTP response from the sync server.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsPermanent reports whether err is a failure that retrying cannot fix:
// a 4xx rejection from the server. Transport errors and 5xx responses are
// transient and worth another attempt.
func IsPermanent(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}
	return false
}
