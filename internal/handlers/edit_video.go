package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/middlewares"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/services"
)

// VideoEditor defines the contract for editing a video.
type VideoEditor interface {
	EditVideo(ctx context.Context, actor *models.UserDB, videoID uuid.UUID, req models.EditVideoRequest) (*models.VideoDB, error)
}

// NewEditVideoHandler returns an HTTP handler that applies a partial update
// to a video. Only the author or an admin may edit.
// @Summary Edit a video
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoID path string true "Video ID"
// @Param request body models.EditVideoRequest true "Fields to change"
// @Success 200 {object} models.VideoDB "Updated video"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload or unknown map/grenade"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Actor is neither author nor admin"
// @Failure 404 {object} handlers.ErrorResponse "Video does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /videos/{videoID} [put]
func NewEditVideoHandler(svc VideoEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middlewares.GetUserFromContext(r.Context())
		if actor == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authorization required"})
			return
		}

		videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "videoID is malformed"})
			return
		}

		var req models.EditVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if msg, ok := validateEditRequest(req); !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
			return
		}

		video, err := svc.EditVideo(r.Context(), actor, videoID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVideoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(video)
	}
}

func validateEditRequest(req models.EditVideoRequest) (string, bool) {
	if req.Title != nil && (*req.Title == "" || len(*req.Title) > maxTitleLen) {
		return "title must be between 1 and 200 characters", false
	}
	if req.Description != nil && len(*req.Description) > maxDescriptionLen {
		return "description must be at most 500 characters", false
	}
	if req.VideoURL != nil && *req.VideoURL == "" {
		return "video_url must not be empty", false
	}
	return "", true
}
