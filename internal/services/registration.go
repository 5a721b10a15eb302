package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=registration.go -destination=registration_mock.go -package=services

// Error variables
var (
	ErrAlreadyRegistered       = errors.New("user is already registered for this event")
	ErrRegistrationNotFound    = errors.New("registration not found")
	ErrInvalidRegistrationData = errors.New("invalid registration status")
)

// RegistrationStore defines persistence operations for registrations.
type RegistrationStore interface {
	Save(ctx context.Context, userID, eventID uuid.UUID, note *string) (*models.RegistrationDB, error)
	Update(ctx context.Context, reg models.RegistrationDB) (*models.RegistrationDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (*models.RegistrationDB, error)
	List(ctx context.Context) ([]models.RegistrationDB, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.RegistrationDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RegistrationDB, error)
	ActiveEventIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// UserGetter reads single users.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// EventGetter reads single events.
type EventGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.EventDB, error)
}

// RegistrationNotifier dispatches best-effort registration notifications.
type RegistrationNotifier interface {
	RegistrationConfirmed(ctx context.Context, user models.UserDB, event models.EventDB, reg models.RegistrationDB)
	RegistrationCancelled(ctx context.Context, user models.UserDB, event models.EventDB, reg models.RegistrationDB)
}

// RegistrationService owns the attendee-to-event relationship and its
// CONFIRMED/CANCELLED state machine. A (user, event) pair holds at most one
// registration row for its whole history: cancelling keeps the row and
// re-registering flips it back, so the registration id is stable across
// cancel/re-register cycles.
type RegistrationService struct {
	regs     RegistrationStore
	users    UserGetter
	events   EventGetter
	notifier RegistrationNotifier
}

func NewRegistrationService(
	regs RegistrationStore,
	users UserGetter,
	events EventGetter,
	notifier RegistrationNotifier,
) *RegistrationService {
	return &RegistrationService{
		regs:     regs,
		users:    users,
		events:   events,
		notifier: notifier,
	}
}

// Register confirms the user's attendance for the event.
//
// No prior row: a new CONFIRMED registration is created. A CANCELLED row:
// it is flipped back to CONFIRMED and the note overwritten, reusing the
// same id. A CONFIRMED row: ErrAlreadyRegistered, with no side effects.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID uuid.UUID, note *string) (*models.RegistrationDB, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.regs.GetByUserAndEvent(ctx, userID, eventID)
	switch {
	case err == nil:
		if existing.Status != models.RegistrationStatusCancelled {
			return nil, ErrAlreadyRegistered
		}
		existing.Status = models.RegistrationStatusConfirmed
		existing.Note = note
		reg, err := s.regs.Update(ctx, *existing)
		if err != nil {
			logger.Log.Errorw("failed to re-confirm registration", "registration_id", existing.ID, "err", err)
			return nil, err
		}
		s.notifier.RegistrationConfirmed(ctx, *user, *event, *reg)
		return reg, nil

	case errors.Is(err, repositories.ErrNotFound):
		reg, err := s.regs.Save(ctx, userID, eventID, note)
		if err != nil {
			// A concurrent Register for the same pair won the insert.
			if repositories.IsUniqueViolation(err) {
				return nil, ErrAlreadyRegistered
			}
			logger.Log.Errorw("failed to save registration", "user_id", userID, "event_id", eventID, "err", err)
			return nil, err
		}
		s.notifier.RegistrationConfirmed(ctx, *user, *event, *reg)
		return reg, nil

	default:
		return nil, err
	}
}

// Cancel sets the registration to CANCELLED unconditionally. Cancelling an
// already-cancelled registration re-persists and re-notifies.
func (s *RegistrationService) Cancel(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error) {
	existing, err := s.regs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}

	existing.Status = models.RegistrationStatusCancelled
	reg, err := s.regs.Update(ctx, *existing)
	if err != nil {
		logger.Log.Errorw("failed to cancel registration", "registration_id", id, "err", err)
		return nil, err
	}

	user, uerr := s.users.GetByID(ctx, reg.UserID)
	event, eerr := s.events.GetByID(ctx, reg.EventID)
	if uerr != nil || eerr != nil {
		logger.Log.Errorw("skipping cancellation notification",
			"registration_id", id, "user_err", uerr, "event_err", eerr)
		return reg, nil
	}
	s.notifier.RegistrationCancelled(ctx, *user, *event, *reg)

	return reg, nil
}

// Update is the administrative override: a non-nil status is written
// directly, bypassing the register/cancel transition rules, and the note is
// always overwritten, including to nil. No notification is sent.
func (s *RegistrationService) Update(ctx context.Context, id uuid.UUID, status *string, note *string) (*models.RegistrationDB, error) {
	existing, err := s.regs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}

	if status != nil {
		if !models.ValidRegistrationStatus(*status) {
			return nil, ErrInvalidRegistrationData
		}
		existing.Status = *status
	}
	existing.Note = note

	return s.regs.Update(ctx, *existing)
}

// IsUserRegistered reports whether the user holds a non-cancelled
// registration for the event. Missing users or events count as false.
func (s *RegistrationService) IsUserRegistered(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || eventID == uuid.Nil {
		return false, nil
	}

	reg, err := s.regs.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return reg.Status != models.RegistrationStatusCancelled, nil
}

// RegisteredEventIDs returns the set of event ids the user holds a
// non-cancelled registration for.
func (s *RegistrationService) RegisteredEventIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids := make(map[uuid.UUID]struct{})
	if userID == uuid.Nil {
		return ids, nil
	}

	eventIDs, err := s.regs.ActiveEventIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range eventIDs {
		ids[id] = struct{}{}
	}
	return ids, nil
}

func (s *RegistrationService) Get(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error) {
	reg, err := s.regs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) List(ctx context.Context) ([]models.RegistrationDB, error) {
	return s.regs.List(ctx)
}

// ListByEvent returns the event's registrations; the event must exist.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.RegistrationDB, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.regs.ListByEvent(ctx, eventID)
}

// ListByUser returns the user's registrations; the user must exist.
func (s *RegistrationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RegistrationDB, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.regs.ListByUser(ctx, userID)
}
