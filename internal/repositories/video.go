package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/models"
)

// VideoReadRepository handles read access to videos.
type VideoReadRepository struct {
	db *sqlx.DB
}

func NewVideoReadRepository(db *sqlx.DB) *VideoReadRepository {
	return &VideoReadRepository{db: db}
}

// GetByID returns the video with the given id, or ErrNotFound.
func (r *VideoReadRepository) GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoDB, error) {
	const query = `
		SELECT video_id, title, description, video_url, thumbnail_url,
		       author_id, map_id, grenade_id, created_at, updated_at
		FROM videos
		WHERE video_id = $1
	`

	var video models.VideoDB
	err := r.db.GetContext(ctx, &video, query, videoID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{videoID},
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &video, nil
}

// ListByMapAndGrenade returns videos matching both filters, newest first.
func (r *VideoReadRepository) ListByMapAndGrenade(ctx context.Context, mapID, grenadeID uuid.UUID) ([]models.VideoDB, error) {
	const query = `
		SELECT video_id, title, description, video_url, thumbnail_url,
		       author_id, map_id, grenade_id, created_at, updated_at
		FROM videos
		WHERE map_id = $1 AND grenade_id = $2
		ORDER BY created_at DESC
	`

	var videos []models.VideoDB
	err := r.db.SelectContext(ctx, &videos, query, mapID, grenadeID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mapID, grenadeID},
		"count", len(videos),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return videos, nil
}

// VideoWriteRepository handles video mutations. When a request-scoped
// transaction is present in the context it is used instead of the pool.
type VideoWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVideoWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VideoWriteRepository {
	return &VideoWriteRepository{db: db, txGetter: txGetter}
}

func (r *VideoWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new video and returns the stored record. A dangling
// author/map/grenade reference yields ErrForeignKey.
func (r *VideoWriteRepository) Save(ctx context.Context, video models.VideoDB) (*models.VideoDB, error) {
	const query = `
		INSERT INTO videos (video_id, title, description, video_url, thumbnail_url,
		                    author_id, map_id, grenade_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING video_id, title, description, video_url, thumbnail_url,
		          author_id, map_id, grenade_id, created_at, updated_at
	`
	args := []any{
		video.VideoID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		video.AuthorID, video.MapID, video.GrenadeID, video.CreatedAt, video.UpdatedAt,
	}

	var stored models.VideoDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{video.VideoID, video.Title, video.AuthorID, video.MapID, video.GrenadeID},
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &stored, nil
}

// Update rewrites the mutable fields of an existing video. created_at is never
// touched. Returns ErrNotFound when the row no longer exists.
func (r *VideoWriteRepository) Update(ctx context.Context, video models.VideoDB) (*models.VideoDB, error) {
	const query = `
		UPDATE videos
		SET title = $2,
		    description = $3,
		    video_url = $4,
		    thumbnail_url = $5,
		    map_id = $6,
		    grenade_id = $7,
		    updated_at = $8
		WHERE video_id = $1
		RETURNING video_id, title, description, video_url, thumbnail_url,
		          author_id, map_id, grenade_id, created_at, updated_at
	`
	args := []any{
		video.VideoID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		video.MapID, video.GrenadeID, video.UpdatedAt,
	}

	var stored models.VideoDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query, args...)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{video.VideoID, video.Title, video.MapID, video.GrenadeID},
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &stored, nil
}

// Delete removes a video by id. Returns ErrNotFound when no row was deleted,
// so a repeated delete fails instead of passing silently.
func (r *VideoWriteRepository) Delete(ctx context.Context, videoID uuid.UUID) error {
	const query = `DELETE FROM videos WHERE video_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, videoID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", query,
		"args", []any{videoID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
