package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/parkpay/internal/usecase"
)

// HealthHandler handles health check requests for the ops server.
type HealthHandler struct {
	entryRepo usecase.EntryRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(entryRepo usecase.EntryRepository) *HealthHandler {
	return &HealthHandler{entryRepo: entryRepo}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the entry log is readable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if _, err := h.entryRepo.List(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":    "unavailable",
			"entry_log": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ready",
		"entry_log": "ok",
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
