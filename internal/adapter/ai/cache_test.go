package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/cache"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

type countingClient struct {
	calls int
	out   string
	err   error
}

func (c *countingClient) Generate(context.Context, string, domain.GenerateOptions) (string, error) {
	c.calls++
	return c.out, c.err
}

func TestCachedClientHitSkipsBase(t *testing.T) {
	base := &countingClient{out: "greeting text"}
	c := NewCachedClient(base, cache.NewMemory(10))
	opts := domain.GenerateOptions{UseCache: true, Temperature: 0.8}

	first, err := c.Generate(context.Background(), "hello", opts)
	require.NoError(t, err)
	second, err := c.Generate(context.Background(), "hello", opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, base.calls)
}

func TestCachedClientBypassWhenDisabled(t *testing.T) {
	base := &countingClient{out: "fresh"}
	c := NewCachedClient(base, cache.NewMemory(10))
	opts := domain.GenerateOptions{UseCache: false, Temperature: 0.1}

	_, err := c.Generate(context.Background(), "extract", opts)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), "extract", opts)
	require.NoError(t, err)

	assert.Equal(t, 2, base.calls)
}

func TestCachedClientErrorNotCached(t *testing.T) {
	base := &countingClient{err: errors.New("boom")}
	c := NewCachedClient(base, cache.NewMemory(10))
	opts := domain.GenerateOptions{UseCache: true, Temperature: 0.8}

	_, err := c.Generate(context.Background(), "hello", opts)
	require.Error(t, err)

	base.err = nil
	base.out = "recovered"
	out, err := c.Generate(context.Background(), "hello", opts)
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 2, base.calls)
}

func TestCacheKeyDistinguishesTemperature(t *testing.T) {
	assert.NotEqual(t, CacheKey("prompt", 0.1), CacheKey("prompt", 0.8))
	assert.Equal(t, CacheKey("prompt", 0.1), CacheKey("prompt", 0.1))
}
