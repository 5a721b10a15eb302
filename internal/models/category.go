package models

// CategoryDB represents an event category record in the database
type CategoryDB struct {
	ID          int64   `json:"id" db:"id"`                   // Primary key
	Name        string  `json:"name" db:"name"`               // Unique name
	Description *string `json:"description" db:"description"` // Optional description
}
