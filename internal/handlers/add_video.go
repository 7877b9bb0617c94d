package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/grenade-guide/internal/middlewares"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/services"
)

// VideoAdder defines the contract for adding a video.
type VideoAdder interface {
	AddVideo(ctx context.Context, author *models.UserDB, req models.AddVideoRequest) (*models.VideoDB, error)
}

// NewAddVideoHandler returns an HTTP handler that stores a new video owned
// by the authenticated user.
// @Summary Add a video
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddVideoRequest true "Video payload"
// @Success 201 {object} models.VideoDB "Created video"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload or unknown map/grenade"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /videos [post]
func NewAddVideoHandler(svc VideoAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author := middlewares.GetUserFromContext(r.Context())
		if author == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authorization required"})
			return
		}

		var req models.AddVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if msg, ok := validateVideoFields(req.Title, req.Description, req.VideoURL); !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
			return
		}

		video, err := svc.AddVideo(r.Context(), author, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMapDoesNotExist),
				errors.Is(err, services.ErrGrenadeDoesNotExist):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(video)
	}
}

func validateVideoFields(title string, description *string, videoURL string) (string, bool) {
	if title == "" || len(title) > maxTitleLen {
		return "title must be between 1 and 200 characters", false
	}
	if description != nil && len(*description) > maxDescriptionLen {
		return "description must be at most 500 characters", false
	}
	if videoURL == "" {
		return "video_url is required", false
	}
	return "", true
}
