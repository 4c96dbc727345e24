package cache

import (
	"context"
	"time"

	"log/slog"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "intake:prompt:"

// Redis stores prompt results in Redis with a TTL. Failures degrade to a
// cache miss; generation proceeds without the cache.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to addr. TTL <= 0 means entries never expire.
func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{rdb: redis.NewClient(&redis.Options{Addr: addr}), ttl: ttl}
}

// NewRedisWithClient wraps an existing client; used by tests with miniredis.
func NewRedisWithClient(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// Get returns the cached value for key.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("redis cache get failed", slog.Any("error", err))
		}
		return "", false
	}
	return val, true
}

// Set stores value under key. Errors are logged and ignored.
func (r *Redis) Set(ctx context.Context, key, value string) {
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err(); err != nil {
		slog.Debug("redis cache set failed", slog.Any("error", err))
	}
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error { return r.rdb.Close() }
