package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/services"
)

// VideoExporter defines the contract for the plain-text export.
type VideoExporter interface {
	ExportVideos(ctx context.Context, mapID, grenadeID uuid.UUID) ([]byte, error)
}

// NewExportHandler returns an HTTP handler that serves the video list for a
// map and grenade pair as a downloadable plain-text file.
// @Summary Export videos as plain text
// @Tags catalog
// @Produce plain
// @Param map_id query string true "Map ID"
// @Param grenade_id query string true "Grenade ID"
// @Success 200 {string} string "Plain-text report"
// @Failure 400 {object} handlers.ErrorResponse "Missing filter or unknown map/grenade"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /videos/export [get]
func NewExportHandler(svc VideoExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mapID, grenadeID, err := parseFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		report, err := svc.ExportVideos(r.Context(), mapID, grenadeID)
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

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="grenade_videos.txt"`)
		w.WriteHeader(http.StatusOK)
		w.Write(report)
	}
}
