package handlers

import (
	"context"
	"net/http"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

// SummaryReader defines the interface that the service must implement.
type SummaryReader interface {
	GetSummary(ctx context.Context) (*models.Summary, error)
}

// NewSummaryHandler returns an HTTP handler for the dashboard counts.
// @Summary Get aggregate counts
// @Tags summary
// @Produce json
// @Success 200 {object} models.Summary "Counts"
// @Router /summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc SummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.GetSummary(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build summary", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
