package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

func TestExtractBareNameSkipsModel(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	var p domain.CandidateProfile

	e.Extract(context.Background(), &p, domain.PhaseGreeting, "john smith")
	assert.Equal(t, "John Smith", p.FullName)
	assert.Equal(t, 0, gen.callCount(), "bare names never reach the model")
}

func TestExtractGreetingIsNotAName(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	var p domain.CandidateProfile

	e.Extract(context.Background(), &p, domain.PhaseGreeting, "hi there")
	assert.Empty(t, p.FullName)
	assert.Equal(t, 1, gen.callCount(), "non-name input goes to the model path")
}

func TestExtractModelJSONMerged(t *testing.T) {
	gen := &fakeGen{respond: func(string) (string, error) {
		return "```json\n{\"email\": \"jane@example.com\", \"experience_years\": 4, \"unknown_key\": \"x\"}\n```", nil
	}}
	e := NewExtractor(gen)
	var p domain.CandidateProfile
	p.FullName = "Jane Doe"

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering, "my email is jane@example.com, 4 years in")
	assert.Equal(t, "jane@example.com", p.Email)
	assert.Equal(t, "4", p.ExperienceYears)
}

func TestExtractModelOutputUnvalidated(t *testing.T) {
	// The model path trusts shape, not content: a malformed address passes
	// through. Only the regex fallback applies the validators.
	gen := &fakeGen{respond: func(string) (string, error) {
		return `{"email": "not-an-email"}`, nil
	}}
	e := NewExtractor(gen)
	p := domain.CandidateProfile{FullName: "Jane Doe"}

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering, "whatever")
	assert.Equal(t, "not-an-email", p.Email)
}

func TestExtractFallbackEmailPhoneExperience(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	p := domain.CandidateProfile{FullName: "Jane Doe"}

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering,
		"reach me at jane@example.com or +49 170 1234567, I have 6 years of experience")
	assert.Equal(t, "jane@example.com", p.Email)
	assert.NotEmpty(t, p.Phone)
	assert.Equal(t, "6", p.ExperienceYears)
}

func TestExtractFallbackTechKeywords(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	p := domain.CandidateProfile{FullName: "Jane Doe", TechStack: "python"}

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering,
		"I mostly use Python, Django and PostgreSQL with Docker")
	// python already present stays single, new ones are appended.
	assert.Contains(t, p.TechStack, "django")
	assert.Contains(t, p.TechStack, "postgresql")
	assert.Contains(t, p.TechStack, "docker")
	assert.Equal(t, 1, strings.Count(p.TechStack, "python"))
}

func TestExtractFallbackNameDenylist(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	var p domain.CandidateProfile

	e.Extract(context.Background(), &p, domain.PhaseGreeting, "good morning")
	assert.Empty(t, p.FullName)
}

func TestExtractContextGuessPosition(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	p := domain.CandidateProfile{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "1234567890",
		ExperienceYears: "4",
		TechStack:       "python",
	}

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering, "interested in Backend Developer")
	require.Len(t, p.DesiredPositions, 1)
	assert.Equal(t, "Backend Developer", p.DesiredPositions[0])
}

func TestExtractContextGuessLocation(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	p := domain.CandidateProfile{
		FullName:         "Jane Doe",
		Email:            "jane@example.com",
		Phone:            "1234567890",
		ExperienceYears:  "4",
		DesiredPositions: []string{"Backend Developer"},
		TechStack:        "python",
	}

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering, `"Berlin, Germany"`)
	assert.Equal(t, "Berlin, Germany", p.Location)
}

func TestExtractContextGuessRejectsNumbers(t *testing.T) {
	gen := &fakeGen{}
	e := NewExtractor(gen)
	p := domain.CandidateProfile{
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		TechStack: "python",
		Phone:     "1234567890",
	}

	e.Extract(context.Background(), &p, domain.PhaseInfoGathering, "42")
	assert.Empty(t, p.ExperienceYears)
	assert.Empty(t, p.DesiredPositions)
}
