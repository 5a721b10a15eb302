package handlers

import (
	"context"
	"net/http"
)

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.MessageResponse "OK"
// @Failure 503 {object} handlers.ErrorResponse "Database unreachable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "Database unreachable")
				return
			}
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}
