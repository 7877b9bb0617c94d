package handlers

// ErrorResponse is the common error body for all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: video does not exist
	Error string `json:"error"`
}

// MessageResponse is the common success body for mutations without a payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Video deleted successfully
	Message string `json:"message"`
}

// Field limits enforced at the HTTP boundary. Referential fields are
// re-validated by the service regardless.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 500
	minUsernameLen    = 3
	maxUsernameLen    = 64
	minPasswordLen    = 6
)
