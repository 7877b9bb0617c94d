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

// VideoRemover defines the contract for deleting a video.
type VideoRemover interface {
	RemoveVideo(ctx context.Context, actor *models.UserDB, videoID uuid.UUID) error
}

// NewDeleteVideoHandler returns an HTTP handler that deletes a video.
// Only the author or an admin may delete.
// @Summary Delete a video
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param videoID path string true "Video ID"
// @Success 200 {object} handlers.MessageResponse "Video deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed video ID"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Actor is neither author nor admin"
// @Failure 404 {object} handlers.ErrorResponse "Video does not exist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /videos/{videoID} [delete]
func NewDeleteVideoHandler(svc VideoRemover) http.HandlerFunc {
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

		if err := svc.RemoveVideo(r.Context(), actor, videoID); err != nil {
			switch {
			case errors.Is(err, services.ErrVideoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Video deleted successfully"})
	}
}
