package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/repositories"
	"github.com/sbilibin2017/grenade-guide/internal/thumbnail"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrVideoNotFound       = errors.New("video does not exist")
	ErrMapDoesNotExist     = errors.New("map does not exist")
	ErrGrenadeDoesNotExist = errors.New("grenade does not exist")
	ErrForbidden           = errors.New("operation is not allowed for this user")
	ErrMissingFilter       = errors.New("both map and grenade filters are required")
)

// MapReader defines read operations for maps.
type MapReader interface {
	List(ctx context.Context) ([]models.MapDB, error)
	GetByID(ctx context.Context, mapID uuid.UUID) (*models.MapDB, error)
}

// GrenadeReader defines read operations for grenade types.
type GrenadeReader interface {
	List(ctx context.Context) ([]models.GrenadeDB, error)
	GetByID(ctx context.Context, grenadeID uuid.UUID) (*models.GrenadeDB, error)
}

// VideoReader defines read operations for videos.
type VideoReader interface {
	GetByID(ctx context.Context, videoID uuid.UUID) (*models.VideoDB, error)
	ListByMapAndGrenade(ctx context.Context, mapID, grenadeID uuid.UUID) ([]models.VideoDB, error)
}

// VideoWriter defines write operations for videos.
type VideoWriter interface {
	Save(ctx context.Context, video models.VideoDB) (*models.VideoDB, error)
	Update(ctx context.Context, video models.VideoDB) (*models.VideoDB, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CanModify reports whether the actor may edit or delete the video:
// the author always may, an admin always may.
func CanModify(video *models.VideoDB, actor *models.UserDB) bool {
	if video == nil || actor == nil {
		return false
	}
	return video.AuthorID == actor.UserID || actor.IsAdmin()
}

// CatalogService handles video catalog operations and Kafka publishing.
type CatalogService struct {
	maps        MapReader
	grenades    GrenadeReader
	videoReader VideoReader
	videoWriter VideoWriter
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	maps MapReader,
	grenades GrenadeReader,
	videoReader VideoReader,
	videoWriter VideoWriter,
	users UserReader,
	kafkaWriter KafkaWriter,
) *CatalogService {
	return &CatalogService{
		maps:        maps,
		grenades:    grenades,
		videoReader: videoReader,
		videoWriter: videoWriter,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a video lifecycle event to Kafka.
func (s *CatalogService) publishEvent(ctx context.Context, eventType string, video *models.VideoDB, actor *models.UserDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "video_id", video.VideoID)
		return
	}

	event := models.VideoEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		VideoID:   video.VideoID.String(),
		AuthorID:  video.AuthorID.String(),
		ActorID:   actor.UserID.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal video event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.VideoID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish video event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Video event published", "event_id", event.EventID, "type", eventType)
	}
}

// ListMaps returns all maps for the home view.
func (s *CatalogService) ListMaps(ctx context.Context) ([]models.MapDB, error) {
	maps, err := s.maps.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list maps", "error", err)
		return nil, err
	}
	return maps, nil
}

// ListGrenades returns all grenade types for the home view.
func (s *CatalogService) ListGrenades(ctx context.Context) ([]models.GrenadeDB, error) {
	grenades, err := s.grenades.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list grenades", "error", err)
		return nil, err
	}
	return grenades, nil
}

// ListVideos returns videos for a map and grenade pair, newest first.
// Both filters are required.
func (s *CatalogService) ListVideos(ctx context.Context, mapID, grenadeID uuid.UUID) ([]models.VideoDB, error) {
	if mapID == uuid.Nil || grenadeID == uuid.Nil {
		return nil, ErrMissingFilter
	}

	videos, err := s.videoReader.ListByMapAndGrenade(ctx, mapID, grenadeID)
	if err != nil {
		logger.Log.Errorw("failed to list videos", "map_id", mapID, "grenade_id", grenadeID, "error", err)
		return nil, err
	}
	return videos, nil
}

// AddVideo validates the referenced map and grenade, derives the thumbnail
// when absent, and stores a new video owned by the author.
func (s *CatalogService) AddVideo(ctx context.Context, author *models.UserDB, req models.AddVideoRequest) (*models.VideoDB, error) {
	if _, err := s.maps.GetByID(ctx, req.MapID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMapDoesNotExist
		}
		logger.Log.Errorw("failed to validate map", "map_id", req.MapID, "error", err)
		return nil, err
	}
	if _, err := s.grenades.GetByID(ctx, req.GrenadeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGrenadeDoesNotExist
		}
		logger.Log.Errorw("failed to validate grenade", "grenade_id", req.GrenadeID, "error", err)
		return nil, err
	}

	thumbnailURL := req.ThumbnailURL
	if thumbnailURL == nil {
		if derived, ok := thumbnail.Resolve(req.VideoURL, thumbnail.DefaultQuality); ok {
			thumbnailURL = &derived
		}
	}

	now := time.Now().UTC()
	video := models.VideoDB{
		VideoID:      uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: thumbnailURL,
		AuthorID:     author.UserID,
		MapID:        req.MapID,
		GrenadeID:    req.GrenadeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stored, err := s.videoWriter.Save(ctx, video)
	if err != nil {
		logger.Log.Errorw("failed to save video", "video_id", video.VideoID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventVideoAdded, stored, author)

	return stored, nil
}

// EditVideo applies a partial update to a video after the ownership check.
// A changed source URL re-derives the thumbnail; updated_at is always refreshed.
func (s *CatalogService) EditVideo(ctx context.Context, actor *models.UserDB, videoID uuid.UUID, req models.EditVideoRequest) (*models.VideoDB, error) {
	video, err := s.videoReader.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		logger.Log.Errorw("failed to get video", "video_id", videoID, "error", err)
		return nil, err
	}

	if !CanModify(video, actor) {
		logger.Log.Errorw("modification forbidden", "video_id", videoID, "actor_id", actor.UserID)
		return nil, ErrForbidden
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = req.Description
	}
	if req.VideoURL != nil && *req.VideoURL != video.VideoURL {
		video.VideoURL = *req.VideoURL
		video.ThumbnailURL = nil
		if derived, ok := thumbnail.Resolve(video.VideoURL, thumbnail.DefaultQuality); ok {
			video.ThumbnailURL = &derived
		}
	}
	if req.MapID != nil && *req.MapID != video.MapID {
		if _, err := s.maps.GetByID(ctx, *req.MapID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrMapDoesNotExist
			}
			return nil, err
		}
		video.MapID = *req.MapID
	}
	if req.GrenadeID != nil && *req.GrenadeID != video.GrenadeID {
		if _, err := s.grenades.GetByID(ctx, *req.GrenadeID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrGrenadeDoesNotExist
			}
			return nil, err
		}
		video.GrenadeID = *req.GrenadeID
	}

	video.UpdatedAt = time.Now().UTC()

	stored, err := s.videoWriter.Update(ctx, *video)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		logger.Log.Errorw("failed to update video", "video_id", videoID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventVideoUpdated, stored, actor)

	return stored, nil
}

// RemoveVideo deletes a video after the ownership check. A second removal of
// the same video fails with ErrVideoNotFound.
func (s *CatalogService) RemoveVideo(ctx context.Context, actor *models.UserDB, videoID uuid.UUID) error {
	video, err := s.videoReader.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVideoNotFound
		}
		logger.Log.Errorw("failed to get video", "video_id", videoID, "error", err)
		return err
	}

	if !CanModify(video, actor) {
		logger.Log.Errorw("deletion forbidden", "video_id", videoID, "actor_id", actor.UserID)
		return ErrForbidden
	}

	if err := s.videoWriter.Delete(ctx, videoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVideoNotFound
		}
		logger.Log.Errorw("failed to delete video", "video_id", videoID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.EventVideoDeleted, video, actor)

	return nil
}
