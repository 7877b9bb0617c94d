package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoDB represents a grenade lineup video record in the database
type VideoDB struct {
	VideoID      uuid.UUID `json:"id" db:"video_id"`                           // Primary key
	Title        string    `json:"title" db:"title"`                           // Video title
	Description  *string   `json:"description,omitempty" db:"description"`     // Optional description
	VideoURL     string    `json:"video_url" db:"video_url"`                   // Source link (YouTube)
	ThumbnailURL *string   `json:"thumbnail_url,omitempty" db:"thumbnail_url"` // Derived preview image link
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`                   // Owning user
	MapID        uuid.UUID `json:"map_id" db:"map_id"`                         // Referenced map
	GrenadeID    uuid.UUID `json:"grenade_id" db:"grenade_id"`                 // Referenced grenade type
	CreatedAt    time.Time `json:"created_at" db:"created_at"`                 // Set once at creation
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`                 // Refreshed on every mutation
}

// AddVideoRequest carries the validated fields for creating a video
// swagger:model AddVideoRequest
type AddVideoRequest struct {
	Title        string    `json:"title"`                   // Video title
	Description  *string   `json:"description,omitempty"`   // Optional description
	VideoURL     string    `json:"video_url"`               // Source link (YouTube)
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"` // Explicit thumbnail, derived from the URL when absent
	MapID        uuid.UUID `json:"map_id"`                  // Referenced map
	GrenadeID    uuid.UUID `json:"grenade_id"`              // Referenced grenade type
}

// EditVideoRequest carries the fields for a partial video update.
// Nil fields are left unchanged
// swagger:model EditVideoRequest
type EditVideoRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	VideoURL    *string    `json:"video_url,omitempty"`
	MapID       *uuid.UUID `json:"map_id,omitempty"`
	GrenadeID   *uuid.UUID `json:"grenade_id,omitempty"`
}
