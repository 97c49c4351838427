package catalogcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotKey holds the serialized list of available catalog items.
const SnapshotKey = "pizzapetes:catalog:available"

// CategoryKey returns the cache key for one menu category.
func CategoryKey(category string) string {
	return "pizzapetes:catalog:category:" + category
}

// Cache is a read-through snapshot cache for the catalog. A missing key
// yields an empty string, not an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisCache stores snapshots in Redis with a fixed TTL so a stalled
// refresher cannot serve an arbitrarily old menu forever.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects a snapshot cache to the given Redis address.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Get returns the cached value or empty string when the key is absent.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores the value under key for the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache disables caching: every read misses, every write succeeds.
// Used when no cache address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (string, error) { return "", nil }
func (NoopCache) Set(context.Context, string, string) error   { return nil }
