package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID  `json:"id" db:"user_id"`                     // Primary key
	Name      string     `json:"name" db:"name"`                      // Display name, 2-100 chars
	Email     string     `json:"email" db:"email"`                    // Unique, stored trimmed and lower-cased
	IPAddress *string    `json:"ipAddress,omitempty" db:"ip_address"` // Optional dotted-quad string
	Location  *string    `json:"location,omitempty" db:"location"`    // Optional, max 100 chars
	Active    bool       `json:"active" db:"active"`                  // Defaults to true
	Blocked   bool       `json:"blocked" db:"blocked"`                // Administrative flag, never set from CSV
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserInput is a validated, normalized patch of user fields.
// Nil means the field was not present in the input; update paths
// only touch non-nil fields.
type UserInput struct {
	Name      *string
	Email     *string
	IPAddress *string
	Location  *string
	Active    *bool
	Blocked   *bool
	LastLogin *time.Time
}
