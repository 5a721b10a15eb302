package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=ticket.go -destination=ticket_mock.go -package=services

// Error variables
var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrTicketExists   = errors.New("ticket already exists for this registration")
)

// TicketStore defines persistence operations for tickets.
type TicketStore interface {
	Save(ctx context.Context, registrationID uuid.UUID, qrCode string) (*models.TicketDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TicketDB, error)
	GetByQrCode(ctx context.Context, qrCode string) (*models.TicketDB, error)
	GetByRegistration(ctx context.Context, registrationID uuid.UUID) (*models.TicketDB, error)
	List(ctx context.Context) ([]models.TicketDB, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.TicketDB, error)
}

// RegistrationGetter reads single registrations.
type RegistrationGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error)
}

// TicketService issues at most one ticket per registration, identified by a
// unique opaque QR code.
type TicketService struct {
	tickets TicketStore
	regs    RegistrationGetter
}

func NewTicketService(tickets TicketStore, regs RegistrationGetter) *TicketService {
	return &TicketService{tickets: tickets, regs: regs}
}

// Create issues the ticket for a registration. A second call for the same
// registration fails with ErrTicketExists and leaves the first ticket
// untouched.
func (s *TicketService) Create(ctx context.Context, registrationID uuid.UUID) (*models.TicketDB, error) {
	if _, err := s.regs.GetByID(ctx, registrationID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}

	if _, err := s.tickets.GetByRegistration(ctx, registrationID); err == nil {
		return nil, ErrTicketExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	qrCode := "QR-" + uuid.NewString()

	ticket, err := s.tickets.Save(ctx, registrationID, qrCode)
	if err != nil {
		// A concurrent Create for the same registration won the insert.
		if repositories.IsUniqueViolation(err) {
			return nil, ErrTicketExists
		}
		logger.Log.Errorw("failed to save ticket", "registration_id", registrationID, "err", err)
		return nil, err
	}
	return ticket, nil
}

// Invalidate sets the ticket to INVALID unconditionally; invalidating an
// already-invalid ticket is harmless.
func (s *TicketService) Invalidate(ctx context.Context, id uuid.UUID) (*models.TicketDB, error) {
	ticket, err := s.tickets.UpdateStatus(ctx, id, models.TicketStatusInvalid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, id uuid.UUID) (*models.TicketDB, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) GetByQrCode(ctx context.Context, qrCode string) (*models.TicketDB, error) {
	ticket, err := s.tickets.GetByQrCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) GetByRegistration(ctx context.Context, registrationID uuid.UUID) (*models.TicketDB, error) {
	ticket, err := s.tickets.GetByRegistration(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) List(ctx context.Context) ([]models.TicketDB, error) {
	return s.tickets.List(ctx)
}
