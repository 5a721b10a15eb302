package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"
)

// TicketManager defines the interface that the service must implement.
type TicketManager interface {
	Create(ctx context.Context, registrationID uuid.UUID) (*models.TicketDB, error)
	Invalidate(ctx context.Context, id uuid.UUID) (*models.TicketDB, error)
	Get(ctx context.Context, id uuid.UUID) (*models.TicketDB, error)
	GetByQrCode(ctx context.Context, qrCode string) (*models.TicketDB, error)
	GetByRegistration(ctx context.Context, registrationID uuid.UUID) (*models.TicketDB, error)
	List(ctx context.Context) ([]models.TicketDB, error)
}

// NewGenerateTicketHandler returns an HTTP handler that issues the ticket
// for a registration. Each registration gets at most one ticket.
// @Summary Generate a ticket
// @Tags tickets
// @Produce json
// @Param registrationId path string true "Registration id"
// @Success 201 {object} models.TicketDB "Ticket"
// @Failure 404 {object} handlers.ErrorResponse "Registration not found"
// @Failure 409 {object} handlers.ErrorResponse "Ticket already exists"
// @Router /tickets/generate/{registrationId} [post]
// @Security BearerAuth
func NewGenerateTicketHandler(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registrationID, err := uuid.Parse(chi.URLParam(r, "registrationId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid registration id")
			return
		}

		ticket, err := svc.Create(r.Context(), registrationID)
		if err != nil {
			writeTicketError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ticket)
	}
}

// NewInvalidateTicketHandler returns an HTTP handler that invalidates a
// ticket. Invalidating twice is harmless.
// @Summary Invalidate a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket id"
// @Success 200 {object} models.TicketDB "Invalidated ticket"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /tickets/{id}/invalidate [put]
// @Security BearerAuth
func NewInvalidateTicketHandler(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ticket id")
			return
		}

		ticket, err := svc.Invalidate(r.Context(), id)
		if err != nil {
			writeTicketError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ticket)
	}
}

// NewGetTicketHandler returns an HTTP handler for a single ticket.
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket id"
// @Success 200 {object} models.TicketDB "Ticket"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [get]
// @Security BearerAuth
func NewGetTicketHandler(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ticket id")
			return
		}

		ticket, err := svc.Get(r.Context(), id)
		if err != nil {
			writeTicketError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ticket)
	}
}

// NewGetTicketByRegistrationHandler returns an HTTP handler that looks a
// ticket up by its registration.
// @Summary Get the ticket for a registration
// @Tags tickets
// @Produce json
// @Param registrationId path string true "Registration id"
// @Success 200 {object} models.TicketDB "Ticket"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /tickets/registration/{registrationId} [get]
// @Security BearerAuth
func NewGetTicketByRegistrationHandler(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registrationID, err := uuid.Parse(chi.URLParam(r, "registrationId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid registration id")
			return
		}

		ticket, err := svc.GetByRegistration(r.Context(), registrationID)
		if err != nil {
			writeTicketError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ticket)
	}
}

// NewGetTicketByQrHandler returns an HTTP handler that looks a ticket up
// by its QR code, for gate scanning.
// @Summary Get a ticket by QR code
// @Tags tickets
// @Produce json
// @Param code path string true "QR code"
// @Success 200 {object} models.TicketDB "Ticket"
// @Failure 404 {object} handlers.ErrorResponse "Ticket not found"
// @Router /tickets/qr/{code} [get]
// @Security BearerAuth
func NewGetTicketByQrHandler(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if code == "" {
			writeError(w, http.StatusBadRequest, "QR code is required")
			return
		}

		ticket, err := svc.GetByQrCode(r.Context(), code)
		if err != nil {
			writeTicketError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ticket)
	}
}

// NewListTicketsHandler returns an HTTP handler for listing all tickets.
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} models.TicketDB "Tickets"
// @Router /tickets [get]
// @Security BearerAuth
func NewListTicketsHandler(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list tickets", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func writeTicketError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTicketNotFound):
		writeError(w, http.StatusNotFound, "Ticket not found")
	case errors.Is(err, services.ErrTicketExists):
		writeError(w, http.StatusConflict, "Ticket already exists for this registration")
	case errors.Is(err, services.ErrRegistrationNotFound):
		writeError(w, http.StatusNotFound, "Registration not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
