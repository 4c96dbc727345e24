package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmpty(t *testing.T) {
	got := Analyze("   ")
	assert.Equal(t, Neutral, got.Category)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestAnalyzePositive(t *testing.T) {
	got := Analyze("I love this, it is a great and excellent role!")
	assert.Equal(t, Positive, got.Category)
	assert.Greater(t, got.Polarity, 0.3)
}

func TestAnalyzeNegative(t *testing.T) {
	got := Analyze("That was a terrible, awful failure and I am worried.")
	assert.Equal(t, Negative, got.Category)
	assert.Less(t, got.Polarity, -0.3)
}

func TestAnalyzeNeutral(t *testing.T) {
	got := Analyze("I have worked with distributed systems for several years.")
	assert.Equal(t, Neutral, got.Category)
}

func TestAnalyzeConfidenceCapped(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "word "
	}
	assert.Equal(t, 0.95, Analyze(long).Confidence)
}

func TestInsightNeedsThreeMessages(t *testing.T) {
	history := []Entry{{Role: "assistant", Content: "Hello"}, {Role: "user", Content: "hi"}}
	assert.Equal(t, "Conversation just started - need more data for insights.", Insight(history))
}

func TestInsightNoUserMessages(t *testing.T) {
	history := []Entry{
		{Role: "assistant", Content: "Hello"},
		{Role: "assistant", Content: "Anyone there?"},
		{Role: "assistant", Content: "Closing soon"},
	}
	assert.Equal(t, "No user messages to analyze.", Insight(history))
}

func TestInsightEnthusiastic(t *testing.T) {
	history := []Entry{
		{Role: "assistant", Content: "Hello"},
		{Role: "user", Content: "I love this, great opportunity!"},
		{Role: "user", Content: "Awesome, I am excited and happy!"},
	}
	assert.Equal(t, "Candidate seems enthusiastic and engaged throughout the conversation.", Insight(history))
}

func TestInsightNeutralDemeanor(t *testing.T) {
	history := []Entry{
		{Role: "assistant", Content: "Hello"},
		{Role: "user", Content: "I have five years of experience."},
		{Role: "user", Content: "I worked mostly on backend services."},
		{Role: "user", Content: "My stack is python and postgres."},
	}
	assert.Equal(t, "Candidate maintains a professional, neutral demeanor.", Insight(history))
}
