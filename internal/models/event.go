package models

// Video lifecycle event types published to the broker.
const (
	EventVideoAdded   = "video_added"
	EventVideoUpdated = "video_updated"
	EventVideoDeleted = "video_deleted"
)

// VideoEvent is the payload published for every catalog mutation.
type VideoEvent struct {
	EventID   string `json:"event_id"`  // Unique event id
	Type      string `json:"type"`      // One of the EventVideo* constants
	Timestamp int64  `json:"timestamp"` // Unix seconds
	VideoID   string `json:"video_id"`  // Affected video
	AuthorID  string `json:"author_id"` // Video owner
	ActorID   string `json:"actor_id"`  // User who performed the mutation
}
