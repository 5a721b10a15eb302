package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=event.go -destination=event_mock.go -package=services

// Error variables
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventData = errors.New("invalid event data")
)

// EventStore defines persistence operations for events.
type EventStore interface {
	Save(ctx context.Context, event models.EventDB) (*models.EventDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.EventDB, error)
	List(ctx context.Context, filter models.EventFilter) ([]models.EventDB, error)
	Update(ctx context.Context, event models.EventDB) (*models.EventDB, error)
	AssignCategory(ctx context.Context, eventID uuid.UUID, categoryID *int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryGetter reads single categories.
type CategoryGetter interface {
	GetByID(ctx context.Context, id int64) (*models.CategoryDB, error)
}

// EventCache caches single events.
type EventCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.EventDB, error)
	Set(ctx context.Context, event models.EventDB) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// ActiveRegistrationCounter counts non-cancelled registrations per event.
type ActiveRegistrationCounter interface {
	CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}

// EventService manages events. Single-event reads go through the cache;
// every write invalidates the cached entry. Cache failures are logged and
// the database remains the source of truth.
type EventService struct {
	events     EventStore
	categories CategoryGetter
	regs       ActiveRegistrationCounter
	cache      EventCache
}

func NewEventService(
	events EventStore,
	categories CategoryGetter,
	regs ActiveRegistrationCounter,
	cache EventCache,
) *EventService {
	return &EventService{
		events:     events,
		categories: categories,
		regs:       regs,
		cache:      cache,
	}
}

func validateEvent(event *models.EventDB) error {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return ErrInvalidEventData
	}
	if event.Capacity != nil && *event.Capacity < 0 {
		return ErrInvalidEventData
	}
	if event.Price != nil && *event.Price < 0 {
		return ErrInvalidEventData
	}
	if event.Status == "" {
		event.Status = models.EventStatusDraft
	}
	if !models.ValidEventStatus(event.Status) {
		return ErrInvalidEventData
	}
	if event.StartTime != nil && event.EndTime != nil && event.EndTime.Before(*event.StartTime) {
		return ErrInvalidEventData
	}
	return nil
}

// Create validates and persists a new event for the organizer.
func (s *EventService) Create(ctx context.Context, organizerID uuid.UUID, event models.EventDB) (*models.EventDB, error) {
	if err := validateEvent(&event); err != nil {
		return nil, err
	}
	if event.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *event.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}
	event.OrganizerID = organizerID

	return s.events.Save(ctx, event)
}

// Get returns a single event, preferring the cache.
func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*models.EventDB, error) {
	if s.cache != nil {
		if event, err := s.cache.Get(ctx, id); err == nil {
			return event, nil
		} else if !errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("event cache read failed", "event_id", id, "err", err)
		}
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *event); err != nil {
			logger.Log.Warnw("event cache write failed", "event_id", id, "err", err)
		}
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.EventDB, error) {
	return s.events.List(ctx, filter)
}

// Update validates and overwrites an existing event.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, event models.EventDB) (*models.EventDB, error) {
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	event.ID = existing.ID
	event.OrganizerID = existing.OrganizerID
	event.CreatedAt = existing.CreatedAt
	if err := validateEvent(&event); err != nil {
		return nil, err
	}
	if event.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *event.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	updated, err := s.events.Update(ctx, event)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// AssignCategory sets the event's category; a nil categoryID clears it.
func (s *EventService) AssignCategory(ctx context.Context, eventID uuid.UUID, categoryID *int64) (*models.EventDB, error) {
	if categoryID != nil {
		if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	if err := s.events.AssignCategory(ctx, eventID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	s.invalidate(ctx, eventID)

	return s.events.GetByID(ctx, eventID)
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// AvailableSeats returns capacity minus non-cancelled registrations, or nil
// when the event has no capacity set.
func (s *EventService) AvailableSeats(ctx context.Context, event models.EventDB) (*int, error) {
	if event.Capacity == nil {
		return nil, nil
	}
	active, err := s.regs.CountActiveByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	remaining := *event.Capacity - active
	return &remaining, nil
}

// View assembles the enriched single-event view for a requesting user.
// registeredIDs is the id set from RegistrationService.RegisteredEventIDs;
// a nil set means an anonymous caller.
func (s *EventService) View(ctx context.Context, event models.EventDB, registeredIDs map[uuid.UUID]struct{}) (models.EventView, error) {
	seats, err := s.AvailableSeats(ctx, event)
	if err != nil {
		return models.EventView{}, err
	}
	_, registered := registeredIDs[event.ID]
	return models.EventView{
		EventDB:        event,
		AvailableSeats: seats,
		IsRegistered:   registered,
	}, nil
}

func (s *EventService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.Log.Warnw("event cache invalidation failed", "event_id", id, "err", err)
	}
}
