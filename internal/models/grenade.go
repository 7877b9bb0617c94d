package models

import "github.com/google/uuid"

// GrenadeDB represents a grenade type record in the database.
// Grenades are seed data and are not mutated after bootstrap.
type GrenadeDB struct {
	GrenadeID   uuid.UUID `json:"id" db:"grenade_id"`              // Primary key
	Name        string    `json:"name" db:"name"`                  // Unique short key, e.g. "smoke"
	DisplayName string    `json:"display_name" db:"display_name"`  // Human-readable name
	Color       *string   `json:"color,omitempty" db:"color"`      // Optional visual tag
}
