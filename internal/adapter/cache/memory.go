// Package cache provides prompt cache backends: an in-process FIFO map for
// single-instance deployments and a Redis store for shared ones.
package cache

import (
	"context"
	"sync"
)

// Memory is a bounded in-process cache with FIFO eviction.
type Memory struct {
	mu    sync.Mutex
	max   int
	items map[string]string
	order []string
}

// NewMemory returns a cache holding at most max entries. A non-positive max
// defaults to 512.
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = 512
	}
	return &Memory{max: max, items: make(map[string]string, max)}
}

// Get returns the cached value for key.
func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.items[key]
	return val, ok
}

// Set stores value under key, evicting the oldest inserted entry when full.
func (m *Memory) Set(_ context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.items[key]; !exists {
		if len(m.order) >= m.max {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.items, oldest)
		}
		m.order = append(m.order, key)
	}
	m.items[key] = value
}
