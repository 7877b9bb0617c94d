package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/repositories"
	"github.com/sbilibin2017/grenade-guide/internal/services"
	"github.com/stretchr/testify/assert"
)

type catalogMocks struct {
	maps        *services.MockMapReader
	grenades    *services.MockGrenadeReader
	videoReader *services.MockVideoReader
	videoWriter *services.MockVideoWriter
	users       *services.MockUserReader
	kafka       *services.MockKafkaWriter
}

func newCatalogService(ctrl *gomock.Controller) (*services.CatalogService, catalogMocks) {
	m := catalogMocks{
		maps:        services.NewMockMapReader(ctrl),
		grenades:    services.NewMockGrenadeReader(ctrl),
		videoReader: services.NewMockVideoReader(ctrl),
		videoWriter: services.NewMockVideoWriter(ctrl),
		users:       services.NewMockUserReader(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewCatalogService(m.maps, m.grenades, m.videoReader, m.videoWriter, m.users, m.kafka)
	return svc, m
}

func strPtr(s string) *string { return &s }

func TestCatalogService_AddVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	author := &models.UserDB{UserID: uuid.New(), Username: "alice", Role: models.RoleUser}
	mapID := uuid.New()
	grenadeID := uuid.New()

	t.Run("derives thumbnail and stores video", func(t *testing.T) {
		m.maps.EXPECT().GetByID(gomock.Any(), mapID).Return(&models.MapDB{MapID: mapID, Name: "de_dust2"}, nil)
		m.grenades.EXPECT().GetByID(gomock.Any(), grenadeID).Return(&models.GrenadeDB{GrenadeID: grenadeID, Name: "smoke"}, nil)
		m.videoWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v models.VideoDB) (*models.VideoDB, error) {
				assert.Equal(t, author.UserID, v.AuthorID)
				assert.Equal(t, v.CreatedAt, v.UpdatedAt)
				if assert.NotNil(t, v.ThumbnailURL) {
					assert.Equal(t, "https://img.youtube.com/vi/ABC123xyz_-/hqdefault.jpg", *v.ThumbnailURL)
				}
				return &v, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		video, err := svc.AddVideo(context.Background(), author, models.AddVideoRequest{
			Title:     "Smoke from T Spawn to B Site",
			VideoURL:  "https://youtu.be/ABC123xyz_-",
			MapID:     mapID,
			GrenadeID: grenadeID,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Smoke from T Spawn to B Site", video.Title)
	})

	t.Run("keeps caller-provided thumbnail", func(t *testing.T) {
		m.maps.EXPECT().GetByID(gomock.Any(), mapID).Return(&models.MapDB{MapID: mapID}, nil)
		m.grenades.EXPECT().GetByID(gomock.Any(), grenadeID).Return(&models.GrenadeDB{GrenadeID: grenadeID}, nil)
		m.videoWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v models.VideoDB) (*models.VideoDB, error) {
				if assert.NotNil(t, v.ThumbnailURL) {
					assert.Equal(t, "https://img.youtube.com/vi/custom/mqdefault.jpg", *v.ThumbnailURL)
				}
				return &v, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.AddVideo(context.Background(), author, models.AddVideoRequest{
			Title:        "Mid to Xbox Smoke",
			VideoURL:     "https://youtu.be/other",
			ThumbnailURL: strPtr("https://img.youtube.com/vi/custom/mqdefault.jpg"),
			MapID:        mapID,
			GrenadeID:    grenadeID,
		})
		assert.NoError(t, err)
	})

	t.Run("nonexistent map fails and does not persist", func(t *testing.T) {
		badMap := uuid.New()
		m.maps.EXPECT().GetByID(gomock.Any(), badMap).Return(nil, repositories.ErrNotFound)

		video, err := svc.AddVideo(context.Background(), author, models.AddVideoRequest{
			Title:     "Lost",
			VideoURL:  "https://youtu.be/ABC123xyz_-",
			MapID:     badMap,
			GrenadeID: grenadeID,
		})
		assert.ErrorIs(t, err, services.ErrMapDoesNotExist)
		assert.Nil(t, video)
	})

	t.Run("nonexistent grenade fails and does not persist", func(t *testing.T) {
		badGrenade := uuid.New()
		m.maps.EXPECT().GetByID(gomock.Any(), mapID).Return(&models.MapDB{MapID: mapID}, nil)
		m.grenades.EXPECT().GetByID(gomock.Any(), badGrenade).Return(nil, repositories.ErrNotFound)

		video, err := svc.AddVideo(context.Background(), author, models.AddVideoRequest{
			Title:     "Lost",
			VideoURL:  "https://youtu.be/ABC123xyz_-",
			MapID:     mapID,
			GrenadeID: badGrenade,
		})
		assert.ErrorIs(t, err, services.ErrGrenadeDoesNotExist)
		assert.Nil(t, video)
	})
}

func TestCatalogService_EditVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	owner := &models.UserDB{UserID: uuid.New(), Username: "alice", Role: models.RoleUser}
	admin := &models.UserDB{UserID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
	stranger := &models.UserDB{UserID: uuid.New(), Username: "bob", Role: models.RoleUser}

	videoID := uuid.New()
	created := time.Now().Add(-time.Hour).UTC()

	makeVideo := func() *models.VideoDB {
		thumb := "https://img.youtube.com/vi/ABC123xyz_-/hqdefault.jpg"
		return &models.VideoDB{
			VideoID:      videoID,
			Title:        "Smoke from T Spawn to B Site",
			VideoURL:     "https://youtu.be/ABC123xyz_-",
			ThumbnailURL: &thumb,
			AuthorID:     owner.UserID,
			MapID:        uuid.New(),
			GrenadeID:    uuid.New(),
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}

	t.Run("title-only edit refreshes updated_at and keeps urls", func(t *testing.T) {
		orig := makeVideo()
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(orig, nil)
		m.videoWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v models.VideoDB) (*models.VideoDB, error) {
				assert.Equal(t, "New title", v.Title)
				assert.Equal(t, "https://youtu.be/ABC123xyz_-", v.VideoURL)
				if assert.NotNil(t, v.ThumbnailURL) {
					assert.Equal(t, "https://img.youtube.com/vi/ABC123xyz_-/hqdefault.jpg", *v.ThumbnailURL)
				}
				assert.Equal(t, created, v.CreatedAt)
				assert.True(t, v.UpdatedAt.After(created))
				return &v, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		video, err := svc.EditVideo(context.Background(), owner, videoID, models.EditVideoRequest{
			Title: strPtr("New title"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "New title", video.Title)
	})

	t.Run("url change re-derives thumbnail", func(t *testing.T) {
		orig := makeVideo()
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(orig, nil)
		m.videoWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v models.VideoDB) (*models.VideoDB, error) {
				assert.Equal(t, "https://www.youtube.com/watch?v=newVideo42", v.VideoURL)
				if assert.NotNil(t, v.ThumbnailURL) {
					assert.Equal(t, "https://img.youtube.com/vi/newVideo42/hqdefault.jpg", *v.ThumbnailURL)
				}
				return &v, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.EditVideo(context.Background(), owner, videoID, models.EditVideoRequest{
			VideoURL: strPtr("https://www.youtube.com/watch?v=newVideo42"),
		})
		assert.NoError(t, err)
	})

	t.Run("admin may edit another user's video", func(t *testing.T) {
		orig := makeVideo()
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(orig, nil)
		m.videoWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v models.VideoDB) (*models.VideoDB, error) {
				return &v, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.EditVideo(context.Background(), admin, videoID, models.EditVideoRequest{
			Title: strPtr("Moderated title"),
		})
		assert.NoError(t, err)
	})

	t.Run("non-owner non-admin is forbidden", func(t *testing.T) {
		orig := makeVideo()
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(orig, nil)

		video, err := svc.EditVideo(context.Background(), stranger, videoID, models.EditVideoRequest{
			Title: strPtr("Hijacked"),
		})
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Nil(t, video)
	})

	t.Run("missing video", func(t *testing.T) {
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(nil, repositories.ErrNotFound)

		video, err := svc.EditVideo(context.Background(), owner, videoID, models.EditVideoRequest{})
		assert.ErrorIs(t, err, services.ErrVideoNotFound)
		assert.Nil(t, video)
	})

	t.Run("moving to a nonexistent map fails", func(t *testing.T) {
		orig := makeVideo()
		badMap := uuid.New()
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(orig, nil)
		m.maps.EXPECT().GetByID(gomock.Any(), badMap).Return(nil, repositories.ErrNotFound)

		video, err := svc.EditVideo(context.Background(), owner, videoID, models.EditVideoRequest{
			MapID: &badMap,
		})
		assert.ErrorIs(t, err, services.ErrMapDoesNotExist)
		assert.Nil(t, video)
	})
}

func TestCatalogService_RemoveVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	owner := &models.UserDB{UserID: uuid.New(), Username: "alice", Role: models.RoleUser}
	stranger := &models.UserDB{UserID: uuid.New(), Username: "bob", Role: models.RoleUser}

	videoID := uuid.New()
	video := &models.VideoDB{VideoID: videoID, AuthorID: owner.UserID}

	t.Run("owner removes video", func(t *testing.T) {
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(video, nil)
		m.videoWriter.EXPECT().Delete(gomock.Any(), videoID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.RemoveVideo(context.Background(), owner, videoID))
	})

	t.Run("non-owner non-admin is forbidden", func(t *testing.T) {
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(video, nil)

		err := svc.RemoveVideo(context.Background(), stranger, videoID)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("second removal is not found", func(t *testing.T) {
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(nil, repositories.ErrNotFound)

		err := svc.RemoveVideo(context.Background(), owner, videoID)
		assert.ErrorIs(t, err, services.ErrVideoNotFound)
	})

	t.Run("row vanished between load and delete", func(t *testing.T) {
		m.videoReader.EXPECT().GetByID(gomock.Any(), videoID).Return(video, nil)
		m.videoWriter.EXPECT().Delete(gomock.Any(), videoID).Return(repositories.ErrNotFound)

		err := svc.RemoveVideo(context.Background(), owner, videoID)
		assert.ErrorIs(t, err, services.ErrVideoNotFound)
	})
}

func TestCatalogService_ListVideos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	mapID := uuid.New()
	grenadeID := uuid.New()

	t.Run("both filters required", func(t *testing.T) {
		_, err := svc.ListVideos(context.Background(), uuid.Nil, grenadeID)
		assert.ErrorIs(t, err, services.ErrMissingFilter)

		_, err = svc.ListVideos(context.Background(), mapID, uuid.Nil)
		assert.ErrorIs(t, err, services.ErrMissingFilter)
	})

	t.Run("returns repository order", func(t *testing.T) {
		newest := models.VideoDB{VideoID: uuid.New(), CreatedAt: time.Now()}
		oldest := models.VideoDB{VideoID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)}
		m.videoReader.EXPECT().
			ListByMapAndGrenade(gomock.Any(), mapID, grenadeID).
			Return([]models.VideoDB{newest, oldest}, nil)

		videos, err := svc.ListVideos(context.Background(), mapID, grenadeID)
		assert.NoError(t, err)
		assert.Equal(t, []models.VideoDB{newest, oldest}, videos)
	})

	t.Run("repository error", func(t *testing.T) {
		m.videoReader.EXPECT().
			ListByMapAndGrenade(gomock.Any(), mapID, grenadeID).
			Return(nil, errors.New("db error"))

		_, err := svc.ListVideos(context.Background(), mapID, grenadeID)
		assert.Error(t, err)
	})
}

func TestCanModify(t *testing.T) {
	ownerID := uuid.New()
	video := &models.VideoDB{VideoID: uuid.New(), AuthorID: ownerID}

	tests := []struct {
		name  string
		video *models.VideoDB
		actor *models.UserDB
		want  bool
	}{
		{
			name:  "owner may modify",
			video: video,
			actor: &models.UserDB{UserID: ownerID, Role: models.RoleUser},
			want:  true,
		},
		{
			name:  "admin may modify",
			video: video,
			actor: &models.UserDB{UserID: uuid.New(), Role: models.RoleAdmin},
			want:  true,
		},
		{
			name:  "stranger may not",
			video: video,
			actor: &models.UserDB{UserID: uuid.New(), Role: models.RoleUser},
			want:  false,
		},
		{
			name:  "nil actor may not",
			video: video,
			want:  false,
		},
		{
			name:  "nil video may not be modified",
			actor: &models.UserDB{UserID: ownerID, Role: models.RoleAdmin},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CanModify(tt.video, tt.actor))
		})
	}
}
