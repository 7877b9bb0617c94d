package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// Status value
	// example: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler for the liveness check.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}
