package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// TestFullScreeningDegraded walks an entire session with the generation
// service down: greeting, info gathering, the phase switch once the three
// required fields are in, and questions served from the curated bank.
func TestFullScreeningDegraded(t *testing.T) {
	gen := &fakeGen{}
	e := newTestEngine(t, gen)
	ctx := context.Background()

	greeting := e.StartSession(ctx)
	assert.Contains(t, greeting, "TalentScout AI")
	assert.Equal(t, domain.PhaseGreeting, e.Phase())

	r := e.ProcessMessage(ctx, "John Smith")
	assert.Contains(t, r, "Nice to meet you, John Smith!")
	assert.Equal(t, domain.PhaseInfoGathering, e.Phase())
	assert.Contains(t, r, "What's your email address?")

	r = e.ProcessMessage(ctx, "john@x.com")
	assert.Equal(t, domain.PhaseInfoGathering, e.Phase())
	assert.Contains(t, r, "tech stack")

	r = e.ProcessMessage(ctx, "Python, Django")
	// Required fields are now complete; the assessment begins even though
	// phone, position and location were never supplied.
	assert.Equal(t, domain.PhaseQuestioning, e.Phase())
	assert.Contains(t, r, "**Question 1:**")
	assert.Contains(t, r, "technical assessment")

	profile := e.Profile()
	assert.Equal(t, "John Smith", profile.FullName)
	assert.Equal(t, "john@x.com", profile.Email)
	assert.Contains(t, profile.TechStack, "python")

	qa := e.QuestionAnswers()
	require.Len(t, qa, 6, "3 questions for each of python and django")

	// Answer all questions; each answer is recorded against its question.
	for i := 0; i < len(qa)-1; i++ {
		r = e.ProcessMessage(ctx, fmt.Sprintf("answer %d", i+1))
		if i < len(qa)-2 {
			assert.Contains(t, r, fmt.Sprintf("**Question %d:**", i+2))
		}
	}
	r = e.ProcessMessage(ctx, "final answer")
	assert.Equal(t, domain.PhaseConclusion, e.Phase())
	assert.Contains(t, r, "Thank you for completing the screening, John Smith!")

	qa = e.QuestionAnswers()
	for i, item := range qa {
		assert.True(t, item.Answered, "question %d", i+1)
		assert.NotEmpty(t, item.Answer)
	}
}

func TestRequiredFieldsGateQuestioning(t *testing.T) {
	gen := &fakeGen{}
	e := newTestEngine(t, gen)
	ctx := context.Background()

	e.StartSession(ctx)
	messages := []string{"John Smith", "john@x.com", "3 years", "interested in Backend Developer", "Berlin"}
	for _, m := range messages {
		e.ProcessMessage(ctx, m)
		assert.Equal(t, domain.PhaseInfoGathering, e.Phase(), "message %q must not advance the phase", m)
	}

	e.ProcessMessage(ctx, "Python, Django")
	assert.Equal(t, domain.PhaseQuestioning, e.Phase())
}

func TestEarlyExitDeterministicConclusion(t *testing.T) {
	gen := &fakeGen{}
	e := newTestEngine(t, gen)
	ctx := context.Background()

	e.StartSession(ctx)
	e.ProcessMessage(ctx, "John Smith")
	e.ProcessMessage(ctx, "john@x.com")
	e.ProcessMessage(ctx, "Python")
	require.Equal(t, domain.PhaseQuestioning, e.Phase())

	before := e.Summary().QuestionsAsked
	first := e.ProcessMessage(ctx, "stop")
	assert.Equal(t, domain.PhaseConclusion, e.Phase())
	assert.Contains(t, first, "Thank you for your time today, John Smith!")
	assert.Equal(t, before, e.Summary().QuestionsAsked, "exit turn does not advance the question index")

	// Subsequent messages re-emit the same conclusion verbatim.
	second := e.ProcessMessage(ctx, "are you still there?")
	assert.Equal(t, first, second)
}

func TestExitIntent(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"bye", true},
		{"Goodbye everyone", true},
		{"I want to exit interview now", true},
		{"please quit screening", true},
		{"can we end chat", true},
		{"end conversation", true},
		{"stop", true},
		{"EXIT", true},
		{"quit now", true},
		{"byebye", false},
		{"I am quite bored", false},
		{"my address is stopford lane", false},
		{"we should never stop learning", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, checkExitIntent(tc.input), "input %q", tc.input)
	}
}

func TestGreetingFallbackWhenUnavailable(t *testing.T) {
	gen := &fakeGen{}
	e := newTestEngine(t, gen)
	greeting := e.StartSession(context.Background())
	assert.Equal(t, fallbackGreeting, greeting)
}

func TestHistoryGrowsByTwoPerTurn(t *testing.T) {
	gen := &fakeGen{}
	e := newTestEngine(t, gen)
	ctx := context.Background()

	e.StartSession(ctx)
	require.Len(t, e.History(), 1)

	e.ProcessMessage(ctx, "John Smith")
	history := e.History()
	require.Len(t, history, 3)
	assert.Equal(t, domain.RoleUser, history[1].Role)
	assert.Equal(t, domain.RoleAssistant, history[2].Role)
}

func TestSummaryFields(t *testing.T) {
	gen := &fakeGen{}
	e := newTestEngine(t, gen)
	ctx := context.Background()

	e.StartSession(ctx)
	e.ProcessMessage(ctx, "John Smith")

	s := e.Summary()
	assert.Equal(t, domain.PhaseInfoGathering, s.Phase)
	assert.Equal(t, "John Smith", s.Candidate.FullName)
	assert.Equal(t, 15, s.CompletionPercent)
	assert.Equal(t, 3, s.MessageCount)
	assert.Equal(t, 0, s.TotalQuestions)
	assert.GreaterOrEqual(t, s.DurationMinutes, 0.0)
}

func TestModelQuestionsParsed(t *testing.T) {
	gen := &fakeGen{respond: func(prompt string) (string, error) {
		if strings.Contains(prompt, "technical interview questions") {
			return "Q1. How does the GC pace itself under allocation bursts?\n" +
				"Q2. Walk through diagnosing goroutine leaks in production?\n" +
				"Q3. You are building a scheduler, latencies spike, how do you fix it sustainably?", nil
		}
		return "", fmt.Errorf("%w: scripted failure", domain.ErrGenerationUnavailable)
	}}
	e := newTestEngine(t, gen)
	ctx := context.Background()

	e.StartSession(ctx)
	e.ProcessMessage(ctx, "John Smith")
	e.ProcessMessage(ctx, "john@x.com")
	r := e.ProcessMessage(ctx, "rust")

	require.Equal(t, domain.PhaseQuestioning, e.Phase())
	assert.Contains(t, r, "How does the GC pace itself under allocation bursts?")
	qa := e.QuestionAnswers()
	require.Len(t, qa, 3)
}
