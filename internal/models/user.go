package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID              uuid.UUID  `json:"id" db:"id"`                               // Primary key
	Username        string     `json:"username" db:"username"`                   // Unique username
	Email           string     `json:"email" db:"email"`                         // Unique email
	FirstName       string     `json:"first_name" db:"first_name"`               // Given name
	LastName        string     `json:"last_name" db:"last_name"`                 // Family name
	Role            string     `json:"role" db:"role"`                           // ADMIN or USER
	PasswordHash    string     `json:"-" db:"password_hash"`                     // Never serialized
	EmailVerified   bool       `json:"email_verified" db:"email_verified"`       // Set via OTP verification
	EmailVerifiedAt *time.Time `json:"email_verified_at" db:"email_verified_at"` // Set iff EmailVerified
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`               // Last update timestamp
}
