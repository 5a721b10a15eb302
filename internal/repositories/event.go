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

const eventColumns = `id, title, description, location, event_date, start_time, end_time,
	price, capacity, status, category_id, organizer_id, created_at, updated_at`

// EventRepository handles persistence for events.
type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Save(ctx context.Context, event models.EventDB) (*models.EventDB, error) {
	now := time.Now().UTC()
	event.ID = uuid.New()
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES (:id, :title, :description, :location, :event_date, :start_time, :end_time,
			:price, :capacity, :status, :category_id, :organizer_id, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, event)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"event_id", event.ID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EventDB, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event models.EventDB
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// List returns events matching the filter, newest first.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.EventDB, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%'
			OR description ILIKE '%' || $1 || '%'
			OR location ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		  AND ($3::BIGINT IS NULL OR category_id = $3)
		ORDER BY created_at DESC
	`
	events := []models.EventDB{}
	if err := r.db.SelectContext(ctx, &events, query, filter.Keyword, filter.Status, filter.CategoryID); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event models.EventDB) (*models.EventDB, error) {
	event.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE events
		SET title = :title,
			description = :description,
			location = :location,
			event_date = :event_date,
			start_time = :start_time,
			end_time = :end_time,
			price = :price,
			capacity = :capacity,
			status = :status,
			category_id = :category_id,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, event)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"event_id", event.ID,
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
	return &event, nil
}

// AssignCategory sets or clears the event's category.
func (r *EventRepository) AssignCategory(ctx context.Context, eventID uuid.UUID, categoryID *int64) error {
	const query = `UPDATE events SET category_id = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, eventID, categoryID, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM events WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("exec", "query", query, "event_id", id, "error", err)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM events`)
	return n, err
}
