package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types.
const (
	NotificationRegistration = "REGISTRATION"
	NotificationCancellation = "CANCELLATION"
)

// NotificationDB represents an in-app notification record in the database
type NotificationDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Recipient
	EventID   uuid.UUID `json:"event_id" db:"event_id"`     // Related event
	Message   string    `json:"message" db:"message"`       // Human-readable text
	Type      string    `json:"type" db:"type"`             // REGISTRATION or CANCELLATION
	IsRead    bool      `json:"is_read" db:"is_read"`       // Read marker
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
