package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

const ticketColumns = `id, registration_id, qr_code, status, created_at, updated_at`

// TicketRepository handles persistence for tickets. The tickets table
// carries UNIQUE (registration_id), which backs the one-ticket-per-
// registration invariant under concurrent issuance.
type TicketRepository struct {
	db *sqlx.DB
}

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Save inserts a new VALID ticket for the registration.
func (r *TicketRepository) Save(ctx context.Context, registrationID uuid.UUID, qrCode string) (*models.TicketDB, error) {
	now := time.Now().UTC()
	ticket := models.TicketDB{
		ID:             uuid.New(),
		RegistrationID: registrationID,
		QrCode:         qrCode,
		Status:         models.TicketStatusValid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES (:id, :registration_id, :qr_code, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, ticket)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"ticket_id", ticket.ID,
		"registration_id", registrationID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TicketDB, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	var ticket models.TicketDB
	if err := r.db.GetContext(ctx, &ticket, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) GetByQrCode(ctx context.Context, qrCode string) (*models.TicketDB, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE qr_code = $1`

	var ticket models.TicketDB
	if err := r.db.GetContext(ctx, &ticket, query, qrCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) GetByRegistration(ctx context.Context, registrationID uuid.UUID) (*models.TicketDB, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE registration_id = $1`

	var ticket models.TicketDB
	if err := r.db.GetContext(ctx, &ticket, query, registrationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) List(ctx context.Context) ([]models.TicketDB, error) {
	tickets := []models.TicketDB{}
	err := r.db.SelectContext(ctx, &tickets,
		`SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateStatus overwrites the ticket status and returns the updated row.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.TicketDB, error) {
	const query = `
		UPDATE tickets SET status = $2, updated_at = $3 WHERE id = $1
		RETURNING ` + ticketColumns

	var ticket models.TicketDB
	err := r.db.GetContext(ctx, &ticket, query, id, status, time.Now().UTC())

	logger.Log.Infow("exec", "query", strings.Join(strings.Fields(query), " "),
		"ticket_id", id, "status", status, "error", err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}
