package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/services"
)

// VideoLister defines the contract for filtered video listing.
type VideoLister interface {
	ListVideos(ctx context.Context, mapID, grenadeID uuid.UUID) ([]models.VideoDB, error)
}

// VideoListResponse carries the filtered video list
// swagger:model VideoListResponse
type VideoListResponse struct {
	Videos []models.VideoDB `json:"videos"`
}

// NewVideosHandler returns an HTTP handler that lists videos for a map and
// grenade pair, newest first.
// @Summary List videos for a map and grenade
// @Tags catalog
// @Produce json
// @Param map_id query string true "Map ID"
// @Param grenade_id query string true "Grenade ID"
// @Success 200 {object} handlers.VideoListResponse "Matching videos"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed filter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /videos [get]
func NewVideosHandler(svc VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mapID, grenadeID, err := parseFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		videos, err := svc.ListVideos(r.Context(), mapID, grenadeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFilter):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VideoListResponse{Videos: videos})
	}
}

// parseFilter reads the map_id and grenade_id query parameters. Both are
// required for listing and export.
func parseFilter(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	mapID, err := uuid.Parse(r.URL.Query().Get("map_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("map_id is missing or malformed")
	}
	grenadeID, err := uuid.Parse(r.URL.Query().Get("grenade_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("grenade_id is missing or malformed")
	}
	return mapID, grenadeID, nil
}
