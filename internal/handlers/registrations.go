package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/middlewares"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"
)

// RegistrationManager defines the interface that the service must implement.
type RegistrationManager interface {
	Register(ctx context.Context, eventID, userID uuid.UUID, note *string) (*models.RegistrationDB, error)
	Cancel(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error)
	Update(ctx context.Context, id uuid.UUID, status *string, note *string) (*models.RegistrationDB, error)
	Get(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error)
	List(ctx context.Context) ([]models.RegistrationDB, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.RegistrationDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RegistrationDB, error)
	IsUserRegistered(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

// CreateRegistrationRequest represents the JSON body for registering
// swagger:model CreateRegistrationRequest
type CreateRegistrationRequest struct {
	// Event id
	// required: true
	EventID uuid.UUID `json:"event_id"`

	// Optional free-text note
	Note *string `json:"note"`
}

// NewCreateRegistrationHandler returns an HTTP handler for registering the
// caller for an event. Re-registering a cancelled registration reuses the
// original row.
// @Summary Register for an event
// @Tags registrations
// @Accept json
// @Produce json
// @Param createRegistrationRequest body handlers.CreateRegistrationRequest true "Registration request"
// @Success 201 {object} models.RegistrationDB "Registration"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Failure 409 {object} handlers.ErrorResponse "Already registered"
// @Router /registrations [post]
// @Security BearerAuth
func NewCreateRegistrationHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.EventID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "event_id is required")
			return
		}

		reg, err := svc.Register(r.Context(), req.EventID, claims.UserID, req.Note)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, reg)
	}
}

// NewCancelRegistrationHandler returns an HTTP handler that cancels a
// registration. Cancelling twice is not an error.
// @Summary Cancel a registration
// @Tags registrations
// @Produce json
// @Param id path string true "Registration id"
// @Success 200 {object} models.RegistrationDB "Cancelled registration"
// @Failure 404 {object} handlers.ErrorResponse "Registration not found"
// @Router /registrations/{id}/cancel [put]
// @Security BearerAuth
func NewCancelRegistrationHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid registration id")
			return
		}

		reg, err := svc.Cancel(r.Context(), id)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reg)
	}
}

// UpdateRegistrationRequest represents the JSON body for the admin update
// swagger:model UpdateRegistrationRequest
type UpdateRegistrationRequest struct {
	// New status; omitted keeps the current status
	Status *string `json:"status"`

	// New note; always overwritten, null clears it
	Note *string `json:"note"`
}

// NewUpdateRegistrationHandler returns an HTTP handler for the
// administrative registration update. No notification is sent.
// @Summary Update a registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration id"
// @Param updateRegistrationRequest body handlers.UpdateRegistrationRequest true "Update request"
// @Success 200 {object} models.RegistrationDB "Updated registration"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status"
// @Failure 404 {object} handlers.ErrorResponse "Registration not found"
// @Router /registrations/{id} [put]
// @Security BearerAuth
func NewUpdateRegistrationHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid registration id")
			return
		}

		var req UpdateRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		reg, err := svc.Update(r.Context(), id, req.Status, req.Note)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reg)
	}
}

// NewGetRegistrationHandler returns an HTTP handler for a single
// registration.
// @Summary Get a registration
// @Tags registrations
// @Produce json
// @Param id path string true "Registration id"
// @Success 200 {object} models.RegistrationDB "Registration"
// @Failure 404 {object} handlers.ErrorResponse "Registration not found"
// @Router /registrations/{id} [get]
// @Security BearerAuth
func NewGetRegistrationHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid registration id")
			return
		}

		reg, err := svc.Get(r.Context(), id)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reg)
	}
}

// NewListRegistrationsHandler returns an HTTP handler for listing all
// registrations.
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Success 200 {array} models.RegistrationDB "Registrations"
// @Router /registrations [get]
// @Security BearerAuth
func NewListRegistrationsHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list registrations", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewListRegistrationsByEventHandler returns an HTTP handler for an
// event's registrations.
// @Summary List registrations for an event
// @Tags registrations
// @Produce json
// @Param eventId path string true "Event id"
// @Success 200 {array} models.RegistrationDB "Registrations"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /registrations/event/{eventId} [get]
// @Security BearerAuth
func NewListRegistrationsByEventHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := uuid.Parse(chi.URLParam(r, "eventId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		list, err := svc.ListByEvent(r.Context(), eventID)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewListMyRegistrationsHandler returns an HTTP handler for the caller's
// own registrations.
// @Summary List the caller's registrations
// @Tags registrations
// @Produce json
// @Success 200 {array} models.RegistrationDB "Registrations"
// @Router /registrations/my [get]
// @Security BearerAuth
func NewListMyRegistrationsHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		list, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// CheckRegistrationResponse reports whether the caller holds an active
// registration for the event
// swagger:model CheckRegistrationResponse
type CheckRegistrationResponse struct {
	// Active registration flag
	Registered bool `json:"registered"`
}

// NewCheckRegistrationHandler returns an HTTP handler that reports whether
// the caller is actively registered for the event. Cancelled registrations
// count as not registered.
// @Summary Check registration status
// @Tags registrations
// @Produce json
// @Param eventId path string true "Event id"
// @Success 200 {object} handlers.CheckRegistrationResponse "Status"
// @Router /registrations/check/{eventId} [get]
// @Security BearerAuth
func NewCheckRegistrationHandler(svc RegistrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		eventID, err := uuid.Parse(chi.URLParam(r, "eventId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		registered, err := svc.IsUserRegistered(r.Context(), claims.UserID, eventID)
		if err != nil {
			logger.Log.Errorw("failed to check registration", "user_id", claims.UserID, "event_id", eventID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, CheckRegistrationResponse{Registered: registered})
	}
}

func writeRegistrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "User is already registered for this event")
	case errors.Is(err, services.ErrRegistrationNotFound):
		writeError(w, http.StatusNotFound, "Registration not found")
	case errors.Is(err, services.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInvalidRegistrationData):
		writeError(w, http.StatusBadRequest, "Invalid registration status")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
