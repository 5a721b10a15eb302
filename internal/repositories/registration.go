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

const registrationColumns = `id, user_id, event_id, status, note, created_at, updated_at`

// RegistrationRepository handles persistence for attendee registrations.
// The registrations table carries UNIQUE (user_id, event_id); Save surfaces
// the violation so callers can turn a concurrent duplicate insert into a
// conflict instead of a second row.
type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Save inserts a new CONFIRMED registration for the (user, event) pair.
func (r *RegistrationRepository) Save(ctx context.Context, userID, eventID uuid.UUID, note *string) (*models.RegistrationDB, error) {
	now := time.Now().UTC()
	reg := models.RegistrationDB{
		ID:        uuid.New(),
		UserID:    userID,
		EventID:   eventID,
		Status:    models.RegistrationStatusConfirmed,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO registrations (` + registrationColumns + `)
		VALUES (:id, :user_id, :event_id, :status, :note, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, reg)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"registration_id", reg.ID,
		"user_id", userID,
		"event_id", eventID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Update persists status and note on an existing row, keeping its id.
func (r *RegistrationRepository) Update(ctx context.Context, reg models.RegistrationDB) (*models.RegistrationDB, error) {
	reg.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE registrations
		SET status = :status, note = :note, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, reg)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"registration_id", reg.ID,
		"status", reg.Status,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &reg, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RegistrationDB, error) {
	const query = `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`

	var reg models.RegistrationDB
	if err := r.db.GetContext(ctx, &reg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// GetByUserAndEvent returns the single registration row for the pair,
// regardless of status, or ErrNotFound.
func (r *RegistrationRepository) GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (*models.RegistrationDB, error) {
	const query = `SELECT ` + registrationColumns + ` FROM registrations WHERE user_id = $1 AND event_id = $2`

	var reg models.RegistrationDB
	if err := r.db.GetContext(ctx, &reg, query, userID, eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context) ([]models.RegistrationDB, error) {
	regs := []models.RegistrationDB{}
	err := r.db.SelectContext(ctx, &regs,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.RegistrationDB, error) {
	regs := []models.RegistrationDB{}
	err := r.db.SelectContext(ctx, &regs,
		`SELECT `+registrationColumns+` FROM registrations WHERE event_id = $1 ORDER BY created_at ASC`, eventID)
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RegistrationDB, error) {
	regs := []models.RegistrationDB{}
	err := r.db.SelectContext(ctx, &regs,
		`SELECT `+registrationColumns+` FROM registrations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// CountActiveByEvent counts non-cancelled registrations; capacity minus this
// count is the event's available seats.
func (r *RegistrationRepository) CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status <> $2`

	var n int
	err := r.db.GetContext(ctx, &n, query, eventID, models.RegistrationStatusCancelled)
	return n, err
}

// ActiveEventIDsByUser returns the ids of events the user holds a
// non-cancelled registration for.
func (r *RegistrationRepository) ActiveEventIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT event_id FROM registrations WHERE user_id = $1 AND status <> $2`

	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids, query, userID, models.RegistrationStatusCancelled); err != nil {
		return nil, err
	}
	return ids, nil
}
