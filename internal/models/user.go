package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`      // Unique username
	Email        string    `json:"email" db:"email"`            // Unique user email
	PasswordHash string    `json:"-" db:"password_hash"` // Hashed password, never serialized
	Role         string    `json:"role" db:"role"`              // "user" or "admin"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
}

// IsAdmin reports whether the user has the admin role.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin
}
