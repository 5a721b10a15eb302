package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration statuses. Initial state is CONFIRMED; CANCELLED registrations
// may be re-confirmed by registering again, which reuses the same row.
const (
	RegistrationStatusConfirmed = "CONFIRMED"
	RegistrationStatusCancelled = "CANCELLED"
)

// ValidRegistrationStatus reports whether s is a registration status value.
func ValidRegistrationStatus(s string) bool {
	return s == RegistrationStatusConfirmed || s == RegistrationStatusCancelled
}

// RegistrationDB represents an attendee registration record in the database.
// At most one row exists per (user, event) pair regardless of status history.
type RegistrationDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key, stable across cancel/re-register cycles
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Attendee
	EventID   uuid.UUID `json:"event_id" db:"event_id"`     // Event
	Status    string    `json:"status" db:"status"`         // CONFIRMED or CANCELLED
	Note      *string   `json:"note" db:"note"`             // Optional free-text note
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
