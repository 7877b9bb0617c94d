package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/models"
)

// GrenadeReadRepository handles read access to the seeded grenades table.
type GrenadeReadRepository struct {
	db *sqlx.DB
}

func NewGrenadeReadRepository(db *sqlx.DB) *GrenadeReadRepository {
	return &GrenadeReadRepository{db: db}
}

// List returns all grenade types ordered by display name.
func (r *GrenadeReadRepository) List(ctx context.Context) ([]models.GrenadeDB, error) {
	const query = `
		SELECT grenade_id, name, display_name, color
		FROM grenades
		ORDER BY display_name
	`

	var grenades []models.GrenadeDB
	err := r.db.SelectContext(ctx, &grenades, query)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(grenades),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return grenades, nil
}

// GetByID returns the grenade type with the given id, or ErrNotFound.
func (r *GrenadeReadRepository) GetByID(ctx context.Context, grenadeID uuid.UUID) (*models.GrenadeDB, error) {
	const query = `
		SELECT grenade_id, name, display_name, color
		FROM grenades
		WHERE grenade_id = $1
	`

	var g models.GrenadeDB
	err := r.db.GetContext(ctx, &g, query, grenadeID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{grenadeID},
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &g, nil
}
