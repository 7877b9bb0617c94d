package models

import "github.com/google/uuid"

// MapDB represents a playable map record in the database.
// Maps are seed data and are not mutated after bootstrap.
type MapDB struct {
	MapID       uuid.UUID `json:"id" db:"map_id"`                  // Primary key
	Name        string    `json:"name" db:"name"`                  // Unique short key, e.g. "de_dust2"
	DisplayName string    `json:"display_name" db:"display_name"`  // Human-readable name, e.g. "Dust II"
}
