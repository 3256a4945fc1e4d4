package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/avoskresensky/user-admin-service/internal/logger"
	"github.com/avoskresensky/user-admin-service/internal/models"
)

// UserCacheRepository is a read-through Redis cache for single user records.
// Cache misses and marshal failures are soft: callers fall back to Postgres.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // TTL for cached records
}

// NewUserCacheRepository creates a new repository instance with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{client: client, exp: expiration}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("cache entry unmarshal failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "hit", true)
	return &user, nil
}

// Set stores the user under its id with the repository TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userCacheKey(user.UserID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "error", err)
	return err
}

// Delete invalidates the cached record for the given id.
func (r *UserCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := userCacheKey(id)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("cache delete", "key", key, "error", err)
	return err
}
