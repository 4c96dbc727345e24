// Package sentiment scores candidate messages with a small polarity lexicon
// and summarizes conversation demeanor in a single line. It is a reporting
// collaborator, not part of the conversation engine.
package sentiment

import (
	"strings"
)

// Categories returned by Analyze.
const (
	Positive = "positive"
	Neutral  = "neutral"
	Negative = "negative"
)

// Score is the sentiment analysis of one text.
type Score struct {
	Category     string  `json:"sentiment"`
	Polarity     float64 `json:"polarity"`     // [-1, 1]
	Subjectivity float64 `json:"subjectivity"` // [0, 1]
	Confidence   float64 `json:"confidence"`   // [0, 1]
}

// Entry is one conversation history message for Insight.
type Entry struct {
	Role    string
	Content string
}

var positiveWords = map[string]bool{
	"great": true, "good": true, "excellent": true, "love": true, "enjoy": true,
	"excited": true, "happy": true, "awesome": true, "fantastic": true, "strong": true,
	"confident": true, "passionate": true, "interesting": true, "best": true,
	"proud": true, "success": true, "successful": true, "well": true, "like": true,
	"thanks": true, "thank": true, "glad": true, "amazing": true, "perfect": true,
}

var negativeWords = map[string]bool{
	"bad": true, "hate": true, "difficult": true, "hard": true, "problem": true,
	"unfortunately": true, "worried": true, "worry": true, "stress": true,
	"stressed": true, "fail": true, "failed": true, "failure": true, "poor": true,
	"terrible": true, "awful": true, "wrong": true, "confused": true, "unsure": true,
	"nervous": true, "never": true, "worst": true, "boring": true, "annoying": true,
}

// Analyze scores a single text. Polarity beyond +0.3 is positive, below -0.3
// negative, otherwise neutral. Confidence grows with text length and is
// capped at 0.95.
func Analyze(text string) Score {
	if strings.TrimSpace(text) == "" {
		return Score{Category: Neutral, Confidence: 0.5}
	}

	words := strings.Fields(strings.ToLower(text))
	var pos, neg int
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:\"'()")
		if positiveWords[w] {
			pos++
		} else if negativeWords[w] {
			neg++
		}
	}

	hits := pos + neg
	var polarity float64
	if hits > 0 {
		polarity = float64(pos-neg) / float64(hits)
	}
	subjectivity := float64(hits) / float64(len(words))
	if subjectivity > 1 {
		subjectivity = 1
	}
	confidence := 0.5 + float64(len(words))*0.02
	if confidence > 0.95 {
		confidence = 0.95
	}

	category := Neutral
	switch {
	case polarity > 0.3:
		category = Positive
	case polarity < -0.3:
		category = Negative
	}
	return Score{Category: category, Polarity: polarity, Subjectivity: subjectivity, Confidence: confidence}
}

// Insight produces a one-line demeanor summary once at least 3 messages
// exist. Only user-role entries are scored.
func Insight(history []Entry) string {
	if len(history) < 3 {
		return "Conversation just started - need more data for insights."
	}

	var counts = map[string]int{}
	var total int
	for _, m := range history {
		if m.Role != "user" {
			continue
		}
		counts[Analyze(m.Content).Category]++
		total++
	}
	if total == 0 {
		return "No user messages to analyze."
	}

	half := float64(total) / 2
	switch {
	case float64(counts[Positive]) > half:
		return "Candidate seems enthusiastic and engaged throughout the conversation."
	case float64(counts[Negative]) > half:
		return "Candidate appears slightly stressed or uncertain in responses."
	case float64(counts[Neutral]) > half:
		return "Candidate maintains a professional, neutral demeanor."
	case counts[Positive] > counts[Negative]:
		return "Candidate shows positive engagement with occasional thoughtful pauses."
	default:
		return "Candidate responses vary - some confidence, some hesitation."
	}
}
