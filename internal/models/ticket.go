package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket statuses. INVALID is terminal in the exposed API.
const (
	TicketStatusValid   = "VALID"
	TicketStatusInvalid = "INVALID"
)

// TicketDB represents an issued ticket record in the database.
// Exactly one ticket may exist per registration.
type TicketDB struct {
	ID             uuid.UUID `json:"id" db:"id"`                           // Primary key
	RegistrationID uuid.UUID `json:"registration_id" db:"registration_id"` // Unique registration reference
	QrCode         string    `json:"qr_code" db:"qr_code"`                 // Unique opaque code
	Status         string    `json:"status" db:"status"`                   // VALID or INVALID
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}
