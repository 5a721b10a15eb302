package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

// NotificationRepository handles persistence for in-app notifications.
type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Save(ctx context.Context, n models.NotificationDB) (*models.NotificationDB, error) {
	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()

	const query = `
		INSERT INTO notifications (id, user_id, event_id, message, type, is_read, created_at)
		VALUES (:id, :user_id, :event_id, :message, :type, :is_read, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	const query = `
		SELECT id, user_id, event_id, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	notifications := []models.NotificationDB{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}
