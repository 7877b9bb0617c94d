package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSessionRepository(rdb)

	t.Run("SaveAndGet", func(t *testing.T) {
		sessionID := uuid.New()
		userID := uuid.New()

		assert.NoError(t, repo.Save(ctx, sessionID, userID, time.Minute))

		got, err := repo.Get(ctx, sessionID)
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		sessionID := uuid.New()
		assert.NoError(t, repo.Save(ctx, sessionID, uuid.New(), time.Minute))
		assert.NoError(t, repo.Delete(ctx, sessionID))

		_, err := repo.Get(ctx, sessionID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, uuid.New()))
	})

	t.Run("Expires", func(t *testing.T) {
		sessionID := uuid.New()
		assert.NoError(t, repo.Save(ctx, sessionID, uuid.New(), 2*time.Second))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, sessionID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
