package handlers

import (
	"log/slog"
	"net/http"

	api "downtimed/internal/api/application"
)

// StatusHandler handles status queries
type StatusHandler struct {
	service *api.StatusService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service *api.StatusService) *StatusHandler {
	return &StatusHandler{
		service: service,
	}
}

// GetStatus handles GET /api/v1/status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetStatus(r.Context())
	if err != nil {
		slog.Error("Failed to get status", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to get status: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, status)
}
