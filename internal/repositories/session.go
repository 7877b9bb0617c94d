package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
)

// SessionRepository stores active session ids in Redis. A session is valid
// while its key exists; logout deletes the key, expiry drops it automatically.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save records a session for the given user with the given lifetime.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID, ttl time.Duration) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, userID.String(), ttl).Err()

	logger.Log.Infow("session save",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get returns the user id bound to a session, or ErrNotFound when the session
// is absent or expired.
func (r *SessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("session get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Errorw("session get: malformed user id",
			"key", key,
			"value", val,
			"error", err,
		)
		return uuid.Nil, err
	}

	return userID, nil
}

// Delete revokes a session. Deleting an absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
