package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fieldsync/parcelsync/pkg/api"
)

// HealthHandler answers the probe requests field clients use to detect
// connectivity.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, api.HealthResponse{Status: "ok"})
}
