package models

import "time"

// EmailOtpDB represents a one-time email verification code.
// Multiple unverified rows may coexist for the same email; verification
// consumes at most one row and expired rows are swept periodically.
type EmailOtpDB struct {
	ID         int64      `json:"id" db:"id"`                   // Primary key
	Email      string     `json:"email" db:"email"`             // Target address, not unique
	OtpCode    string     `json:"-" db:"otp_code"`              // 6-digit numeric code, leading zeros kept
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`   // Hard expiry
	Verified   bool       `json:"verified" db:"verified"`       // Consumed flag
	VerifiedAt *time.Time `json:"verified_at" db:"verified_at"` // Set when Verified flips to true
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
}
