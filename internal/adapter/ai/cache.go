// Package ai composes generation clients with cross-cutting behavior.
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"log/slog"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/observability"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// CachedClient wraps a GenerationClient with a prompt cache. Only calls with
// UseCache set consult the cache; extraction and question generation bypass it
// because their outputs must reflect the current turn.
type CachedClient struct {
	base  domain.GenerationClient
	cache domain.PromptCache
}

// NewCachedClient wraps base with cache.
func NewCachedClient(base domain.GenerationClient, cache domain.PromptCache) *CachedClient {
	return &CachedClient{base: base, cache: cache}
}

// CacheKey derives the cache key for a prompt and temperature. Same prompt at
// a different temperature is a different key.
func CacheKey(prompt string, temperature float64) string {
	sum := sha256.Sum256([]byte(prompt + "|" + strconv.FormatFloat(temperature, 'f', -1, 64)))
	return hex.EncodeToString(sum[:])
}

// Generate serves a cached result when available, otherwise delegates and
// stores the successful response.
func (c *CachedClient) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	if !opts.UseCache {
		return c.base.Generate(ctx, prompt, opts)
	}

	key := CacheKey(prompt, opts.Temperature)
	if val, ok := c.cache.Get(ctx, key); ok {
		observability.ObserveCacheEvent("hit")
		slog.Debug("prompt cache hit", slog.String("key", key[:12]))
		return val, nil
	}
	observability.ObserveCacheEvent("miss")

	out, err := c.base.Generate(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	c.cache.Set(ctx, key, out)
	return out, nil
}
