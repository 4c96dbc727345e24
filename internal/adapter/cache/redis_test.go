package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisWithClient(rdb, ttl), mr
}

func TestRedisGetSet(t *testing.T) {
	r, _ := newTestRedis(t, time.Hour)
	ctx := context.Background()

	_, ok := r.Get(ctx, "missing")
	assert.False(t, ok)

	r.Set(ctx, "k", "v")
	got, ok := r.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestRedisTTLExpiry(t *testing.T) {
	r, mr := newTestRedis(t, time.Minute)
	ctx := context.Background()

	r.Set(ctx, "k", "v")
	mr.FastForward(2 * time.Minute)

	_, ok := r.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisUnavailableDegradesToMiss(t *testing.T) {
	r, mr := newTestRedis(t, time.Hour)
	ctx := context.Background()
	mr.Close()

	r.Set(ctx, "k", "v") // must not panic
	_, ok := r.Get(ctx, "k")
	assert.False(t, ok)
}
