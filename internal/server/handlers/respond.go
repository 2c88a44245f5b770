package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldsync/parcelsync/pkg/api"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError writes the standard error body
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
