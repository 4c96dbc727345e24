package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/observability"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// SessionManager owns the live engines, keyed by ULID session id. Sessions
// are fully isolated: each gets its own engine and the manager never shares
// state between them.
type SessionManager struct {
	mu      sync.Mutex
	engines map[string]*Engine
	factory func() *Engine
	entropy *ulid.MonotonicEntropy
}

// NewSessionManager constructs a manager that creates engines via factory.
func NewSessionManager(factory func() *Engine) *SessionManager {
	return &SessionManager{
		engines: map[string]*Engine{},
		factory: factory,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (m *SessionManager) newSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), m.entropy).String()
}

// Create starts a new session and returns its id and opening greeting.
func (m *SessionManager) Create(ctx context.Context) (string, string) {
	engine := m.factory()
	greeting := engine.StartSession(ctx)

	m.mu.Lock()
	id := m.newSessionID()
	m.engines[id] = engine
	m.mu.Unlock()

	observability.SessionsStartedTotal.Inc()
	return id, greeting
}

// Get returns the engine for a session id.
func (m *SessionManager) Get(id string) (*Engine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine, ok := m.engines[id]
	return engine, ok
}

// Reset replaces the session's engine wholesale, discarding all conversation
// state, and returns the fresh greeting.
func (m *SessionManager) Reset(ctx context.Context, id string) (string, error) {
	m.mu.Lock()
	_, ok := m.engines[id]
	m.mu.Unlock()
	if !ok {
		return "", domain.ErrNotFound
	}

	engine := m.factory()
	greeting := engine.StartSession(ctx)

	m.mu.Lock()
	m.engines[id] = engine
	m.mu.Unlock()
	return greeting, nil
}
