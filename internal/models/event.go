package models

import (
	"time"

	"github.com/google/uuid"
)

// Event lifecycle statuses.
const (
	EventStatusDraft     = "DRAFT"
	EventStatusPending   = "PENDING"
	EventStatusActive    = "ACTIVE"
	EventStatusCompleted = "COMPLETED"
	EventStatusCancelled = "CANCELLED"
	EventStatusPostponed = "POSTPONED"
)

// ValidEventStatus reports whether s is one of the event status values.
func ValidEventStatus(s string) bool {
	switch s {
	case EventStatusDraft, EventStatusPending, EventStatusActive,
		EventStatusCompleted, EventStatusCancelled, EventStatusPostponed:
		return true
	}
	return false
}

// EventDB represents an event record in the database
type EventDB struct {
	ID          uuid.UUID  `json:"id" db:"id"`                   // Primary key
	Title       string     `json:"title" db:"title"`             // Required, non-blank
	Description *string    `json:"description" db:"description"` // Optional description
	Location    *string    `json:"location" db:"location"`       // Optional location
	EventDate   *time.Time `json:"event_date" db:"event_date"`   // Optional calendar date
	StartTime   *time.Time `json:"start_time" db:"start_time"`   // Optional start timestamp
	EndTime     *time.Time `json:"end_time" db:"end_time"`       // Optional end timestamp
	Price       *float64   `json:"price" db:"price"`             // Optional, >= 0
	Capacity    *int       `json:"capacity" db:"capacity"`       // Optional, >= 0
	Status      string     `json:"status" db:"status"`           // Event lifecycle status
	CategoryID  *int64     `json:"category_id" db:"category_id"` // Nullable category reference
	OrganizerID uuid.UUID  `json:"organizer_id" db:"organizer_id"` // Creating admin
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// EventFilter narrows event listings.
type EventFilter struct {
	Keyword    string // Matches title/description/location, empty matches all
	Status     string // Exact status match, empty matches all
	CategoryID *int64 // Category match, nil matches all
}
