package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a stale list can be served after a missed
// invalidation.
const DefaultTTL = 48 * time.Hour

type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetJSON loads key into dest, reporting whether the key existed.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// Delete removes key, reporting whether anything was actually deleted.
func (c *Cache) Delete(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return n > 0, nil
}

// PostListKey is the cache key for the "all posts for this channel+company"
// list, e.g. instagram_posts_ab12 or newsletter_posts_ab12.
func PostListKey(channel, companyID string) string {
	return channel + "_posts_" + companyID
}
