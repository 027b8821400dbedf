package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	api "downtimed/internal/api/application"
)

// OutageHandler handles outage queries
type OutageHandler struct {
	service *api.OutageService
}

// NewOutageHandler creates a new outage handler
func NewOutageHandler(service *api.OutageService) *OutageHandler {
	return &OutageHandler{
		service: service,
	}
}

// ListOutages handles GET /api/v1/outages
func (h *OutageHandler) ListOutages(w http.ResponseWriter, r *http.Request) {
	req := api.ListOutagesRequest{}

	// Parse query parameters
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			req.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			req.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			req.Offset = offset
		}
	}

	outages, err := h.service.ListOutages(r.Context(), req)
	if err != nil {
		slog.Error("Failed to list outages", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to list outages: "+err.Error())
		return
	}

	if outages == nil {
		outages = []api.OutageResponse{}
	}

	respondJSON(w, http.StatusOK, outages)
}
