package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/grenade-guide/internal/models"
)

// HomeLister defines the catalog lookups for the home view.
type HomeLister interface {
	ListMaps(ctx context.Context) ([]models.MapDB, error)
	ListGrenades(ctx context.Context) ([]models.GrenadeDB, error)
}

// HomeResponse carries both selector lists for the home view
// swagger:model HomeResponse
type HomeResponse struct {
	Maps     []models.MapDB     `json:"maps"`
	Grenades []models.GrenadeDB `json:"grenades"`
}

// NewHomeHandler returns an HTTP handler for the home view: the map and
// grenade selectors shown before any filter is chosen.
// @Summary List maps and grenade types
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Selector lists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router / [get]
func NewHomeHandler(svc HomeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maps, err := svc.ListMaps(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		grenades, err := svc.ListGrenades(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HomeResponse{Maps: maps, Grenades: grenades})
	}
}
