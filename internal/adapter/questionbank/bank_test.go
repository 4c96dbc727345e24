package questionbank

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank(t *testing.T, seed int64) *Bank {
	t.Helper()
	b, err := New(rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return b
}

func TestQuestionsExactlyThree(t *testing.T) {
	b := newTestBank(t, 1)
	for _, tech := range []string{"python", "javascript", "react", "java", "html", "css", "c", "fooscript123"} {
		qs := b.Questions(tech, "intermediate")
		require.Len(t, qs, 3, "tech %q", tech)
		for _, q := range qs {
			assert.NotEmpty(t, q)
			assert.Contains(t, q, "?")
		}
	}
}

func TestQuestionsDifficultyTiers(t *testing.T) {
	b := newTestBank(t, 1)
	qs := b.Questions("python", "advanced")
	require.Len(t, qs, 3)
	// Advanced pool questions never mention lists vs tuples.
	for _, q := range qs {
		assert.NotContains(t, q, "lists and tuples")
	}
}

func TestQuestionsUnknownTierFallsBack(t *testing.T) {
	b := newTestBank(t, 1)
	// javascript has only an "any" tier.
	qs := b.Questions("javascript", "advanced")
	require.Len(t, qs, 3)
}

func TestQuestionsAlias(t *testing.T) {
	b := newTestBank(t, 1)
	aliased := b.Questions("js", "beginner")
	require.Len(t, aliased, 3)

	// The alias serves the javascript pool, not generic templates.
	pool := b.tiersFor("javascript")["any"]
	for _, q := range aliased {
		assert.Contains(t, pool, q)
	}
}

func TestQuestionsOrderedMatching(t *testing.T) {
	b := newTestBank(t, 1)
	// "javascript" must hit the javascript pool, not java.
	qs := b.Questions("javascript", "intermediate")
	for _, q := range qs {
		assert.NotContains(t, q, "JVM")
	}
}

func TestQuestionsGenericTemplatesNameTech(t *testing.T) {
	b := newTestBank(t, 1)
	qs := b.Questions("fortran", "intermediate")
	require.Len(t, qs, 3)
	for _, q := range qs {
		assert.Contains(t, q, "fortran")
	}
}

func TestQuestionsDeterministicWithSeed(t *testing.T) {
	a := newTestBank(t, 42).Questions("python", "intermediate")
	b := newTestBank(t, 42).Questions("python", "intermediate")
	assert.Equal(t, a, b)
}
