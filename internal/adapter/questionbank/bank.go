// Package questionbank serves curated technical questions when the
// generation service cannot produce usable ones. The pools ship embedded in
// the binary so fallback never depends on external state.
package questionbank

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

type techEntry struct {
	Tech  string              `yaml:"tech"`
	Alias string              `yaml:"alias"`
	Tiers map[string][]string `yaml:"tiers"`
}

// Bank samples fallback questions from embedded pools. Matching walks the
// entries in file order and picks the first whose tech name is contained in
// the lowercased technology string.
type Bank struct {
	entries []techEntry

	mu  sync.Mutex
	rng *rand.Rand
}

// New parses the embedded pools. The rng drives sampling; tests pass a fixed
// seed for determinism.
func New(rng *rand.Rand) (*Bank, error) {
	var entries []techEntry
	if err := yaml.Unmarshal(questionsYAML, &entries); err != nil {
		return nil, fmt.Errorf("op=questionbank.New: %w", err)
	}
	return &Bank{entries: entries, rng: rng}, nil
}

// genericTemplates cover technologies with no curated pool.
var genericTemplates = []string{
	"Describe your overall experience with %s. What significant projects have you delivered?",
	"What's the most challenging technical problem you've solved using %s?",
	"How do you stay updated with the latest developments in %s?",
	"Explain a complex concept in %s as if you were mentoring a junior developer.",
	"What best practices and architectural patterns do you prioritize when working with %s?",
	"Describe a situation where you had to debug a complex %s issue.",
	"How do you approach performance optimization in %s?",
}

// Questions returns exactly 3 questions for the technology at the requested
// difficulty tier. Curated pools are sampled without replacement; unknown
// technologies get shuffled generic templates instead.
func (b *Bank) Questions(tech, difficulty string) []string {
	lower := strings.ToLower(tech)
	for _, e := range b.entries {
		if !strings.Contains(lower, e.Tech) {
			continue
		}
		tiers := e.Tiers
		if e.Alias != "" {
			tiers = b.tiersFor(e.Alias)
		}
		if tiers == nil {
			continue
		}
		return b.sample(tierPool(tiers, difficulty), 3)
	}

	out := make([]string, len(genericTemplates))
	for i, t := range genericTemplates {
		out[i] = fmt.Sprintf(t, tech)
	}
	return b.sample(out, 3)
}

func (b *Bank) tiersFor(name string) map[string][]string {
	for _, e := range b.entries {
		if e.Tech == name {
			return e.Tiers
		}
	}
	return nil
}

// tierPool resolves a difficulty tier: exact tier, then "any", then
// "intermediate", then whichever tier exists.
func tierPool(tiers map[string][]string, difficulty string) []string {
	if pool, ok := tiers[difficulty]; ok {
		return pool
	}
	if pool, ok := tiers["any"]; ok {
		return pool
	}
	if pool, ok := tiers["intermediate"]; ok {
		return pool
	}
	for _, tier := range []string{"beginner", "advanced"} {
		if pool, ok := tiers[tier]; ok {
			return pool
		}
	}
	return nil
}

func (b *Bank) sample(pool []string, n int) []string {
	if len(pool) <= n {
		return append([]string(nil), pool...)
	}
	b.mu.Lock()
	perm := b.rng.Perm(len(pool))
	b.mu.Unlock()
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}
