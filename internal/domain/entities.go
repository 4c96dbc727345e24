// Package domain holds the core entities and ports of the intake agent.
package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNotFound              = errors.New("not found")
	ErrRateLimited           = errors.New("rate limited")
	ErrGenerationUnavailable = errors.New("generation unavailable")
	ErrMalformedOutput       = errors.New("malformed generation output")
)

// Phase is a stage of the linear conversation state machine.
type Phase string

const (
	PhaseGreeting      Phase = "Greeting"
	PhaseInfoGathering Phase = "InfoGathering"
	PhaseQuestioning   Phase = "Questioning"
	PhaseConclusion    Phase = "Conclusion"
)

// Message roles in the conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry of the append-only conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QuestionAnswer pairs an asked technical question with the candidate's reply.
// Answered stays false until the answer arrives; exports substitute
// AnswerPlaceholder for questions that were never answered.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Answered bool   `json:"answered"`
}

// AnswerPlaceholder is exported for questions with no recorded answer.
const AnswerPlaceholder = "Answered during live session (see full history)"

// GenerateOptions control a single generation call.
type GenerateOptions struct {
	UseCache    bool
	Temperature float64
}

// GenerationClient (port)
//
// Generate produces text for a prompt. Failures are classified through the
// sentinel taxonomy: ErrRateLimited for quota-class upstream failures (retried
// with bounded backoff inside the client), ErrGenerationUnavailable for
// everything else. Callers treat any error as "generation unavailable" and
// take their call-site fallback.
type GenerationClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// PromptCache (port)
//
// Stores immutable generation results keyed by a stable hash of
// (prompt, temperature). Concurrent writers racing on the same key may both
// compute and store the same value; last write wins.
type PromptCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// QuestionBank (port)
//
// Questions returns exactly 3 non-empty fallback questions for a technology
// at a difficulty tier, independent of generation-service availability.
type QuestionBank interface {
	Questions(tech, difficulty string) []string
}
