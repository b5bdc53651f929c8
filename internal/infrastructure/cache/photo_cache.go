package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const latestPhotoKey = "registration:latest_photo"

// ErrCacheMiss is returned when the latest photo path is not cached.
var ErrCacheMiss = errors.New("photo path not cached")

// PhotoCache keeps the path of the most recently uploaded profile photo so
// that lookups skip the database on the hot path. The database remains the
// source of truth; cache failures only degrade to a DB read.
type PhotoCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPhotoCache(client *redis.Client) *PhotoCache {
	return &PhotoCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *PhotoCache) GetLatest(ctx context.Context) (string, error) {
	path, err := c.client.Get(ctx, latestPhotoKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

func (c *PhotoCache) SetLatest(ctx context.Context, path string) error {
	return c.client.Set(ctx, latestPhotoKey, path, c.ttl).Err()
}
