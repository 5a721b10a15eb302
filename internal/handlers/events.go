package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/middlewares"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"
)

// EventReader defines the read operations the event handlers need.
type EventReader interface {
	Get(ctx context.Context, id uuid.UUID) (*models.EventDB, error)
	List(ctx context.Context, filter models.EventFilter) ([]models.EventDB, error)
	View(ctx context.Context, event models.EventDB, registeredIDs map[uuid.UUID]struct{}) (models.EventView, error)
}

// EventWriter defines the write operations the event handlers need.
type EventWriter interface {
	Create(ctx context.Context, organizerID uuid.UUID, event models.EventDB) (*models.EventDB, error)
	Update(ctx context.Context, id uuid.UUID, event models.EventDB) (*models.EventDB, error)
	AssignCategory(ctx context.Context, eventID uuid.UUID, categoryID *int64) (*models.EventDB, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegisteredEventsReader resolves which events the caller is registered for.
type RegisteredEventsReader interface {
	RegisteredEventIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

// NewCreateEventHandler returns an HTTP handler for creating events.
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.EventDB true "Event"
// @Success 201 {object} models.EventDB "Created event"
// @Failure 400 {object} handlers.ErrorResponse "Invalid event data"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /events [post]
// @Security BearerAuth
func NewCreateEventHandler(svc EventWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var event models.EventDB
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		created, err := svc.Create(r.Context(), claims.UserID, event)
		if err != nil {
			writeEventError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// NewListEventsHandler returns an HTTP handler for listing events with
// optional keyword, status and category filters. Each entry carries the
// derived seat count and, for authenticated callers, the registration flag.
// @Summary List events
// @Tags events
// @Produce json
// @Param keyword query string false "Keyword matched against title, description and location"
// @Param status query string false "Exact status filter"
// @Param category_id query integer false "Category filter"
// @Success 200 {array} models.EventView "Events"
// @Router /events [get]
func NewListEventsHandler(events EventReader, regs RegisteredEventsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter := models.EventFilter{
			Keyword: r.URL.Query().Get("keyword"),
			Status:  r.URL.Query().Get("status"),
		}
		if raw := r.URL.Query().Get("category_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid category_id")
				return
			}
			filter.CategoryID = &id
		}

		list, err := events.List(ctx, filter)
		if err != nil {
			logger.Log.Errorw("failed to list events", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		var registered map[uuid.UUID]struct{}
		if claims, ok := middlewares.ClaimsFromContext(ctx); ok {
			registered, err = regs.RegisteredEventIDs(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to resolve registered events", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		views := make([]models.EventView, 0, len(list))
		for _, event := range list {
			view, err := events.View(ctx, event, registered)
			if err != nil {
				logger.Log.Errorw("failed to assemble event view", "event_id", event.ID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			views = append(views, view)
		}
		writeJSON(w, http.StatusOK, views)
	}
}

// NewGetEventHandler returns an HTTP handler for a single event view.
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} models.EventView "Event"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func NewGetEventHandler(events EventReader, regs RegisteredEventsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		event, err := events.Get(ctx, id)
		if err != nil {
			writeEventError(w, err)
			return
		}

		var registered map[uuid.UUID]struct{}
		if claims, ok := middlewares.ClaimsFromContext(ctx); ok {
			registered, err = regs.RegisteredEventIDs(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to resolve registered events", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		view, err := events.View(ctx, *event, registered)
		if err != nil {
			logger.Log.Errorw("failed to assemble event view", "event_id", id, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// NewUpdateEventHandler returns an HTTP handler for updating events.
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param event body models.EventDB true "Event"
// @Success 200 {object} models.EventDB "Updated event"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /events/{id} [put]
// @Security BearerAuth
func NewUpdateEventHandler(svc EventWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		var event models.EventDB
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		updated, err := svc.Update(r.Context(), id, event)
		if err != nil {
			writeEventError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// AssignCategoryRequest represents the JSON body for category assignment
// swagger:model AssignCategoryRequest
type AssignCategoryRequest struct {
	// Category id; null clears the assignment
	CategoryID *int64 `json:"category_id"`
}

// NewAssignEventCategoryHandler returns an HTTP handler that sets or
// clears an event's category.
// @Summary Assign a category to an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param assignCategoryRequest body handlers.AssignCategoryRequest true "Category assignment"
// @Success 200 {object} models.EventDB "Updated event"
// @Failure 404 {object} handlers.ErrorResponse "Event or category not found"
// @Router /events/{id}/category [put]
// @Security BearerAuth
func NewAssignEventCategoryHandler(svc EventWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		var req AssignCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		event, err := svc.AssignCategory(r.Context(), id, req.CategoryID)
		if err != nil {
			writeEventError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewDeleteEventHandler returns an HTTP handler for deleting events.
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
// @Security BearerAuth
func NewDeleteEventHandler(svc EventWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid event id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeEventError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
	}
}

func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, services.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, services.ErrInvalidEventData):
		writeError(w, http.StatusBadRequest, "Invalid event data")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
