package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/models"
)

// MapReadRepository handles read access to the seeded maps table.
type MapReadRepository struct {
	db *sqlx.DB
}

func NewMapReadRepository(db *sqlx.DB) *MapReadRepository {
	return &MapReadRepository{db: db}
}

// List returns all maps ordered by display name.
func (r *MapReadRepository) List(ctx context.Context) ([]models.MapDB, error) {
	const query = `
		SELECT map_id, name, display_name
		FROM maps
		ORDER BY display_name
	`

	var maps []models.MapDB
	err := r.db.SelectContext(ctx, &maps, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(maps),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return maps, nil
}

// GetByID returns the map with the given id, or ErrNotFound.
func (r *MapReadRepository) GetByID(ctx context.Context, mapID uuid.UUID) (*models.MapDB, error) {
	const query = `
		SELECT map_id, name, display_name
		FROM maps
		WHERE map_id = $1
	`

	var m models.MapDB
	err := r.db.GetContext(ctx, &m, query, mapID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mapID},
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &m, nil
}
