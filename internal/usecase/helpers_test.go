package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/questionbank"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// fakeGen scripts generation behavior for tests. With no script it always
// fails, forcing the deterministic fallback paths.
type fakeGen struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	respond func(prompt string) (string, error)
}

func (f *fakeGen) Generate(_ context.Context, prompt string, _ domain.GenerateOptions) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	respond := f.respond
	f.mu.Unlock()
	if respond != nil {
		return respond(prompt)
	}
	return "", fmt.Errorf("%w: scripted failure", domain.ErrGenerationUnavailable)
}

func (f *fakeGen) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestEngine(t *testing.T, gen domain.GenerationClient) *Engine {
	t.Helper()
	bank, err := questionbank.New(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return NewEngine(gen, NewExtractor(gen), NewQuestionGenerator(gen, bank))
}
