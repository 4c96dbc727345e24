package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"log/slog"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/observability"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// Engine drives one candidate screening conversation through the linear
// phase machine: Greeting, InfoGathering, Questioning, Conclusion. It is
// safe for concurrent use; each method takes the engine lock.
type Engine struct {
	gen       domain.GenerationClient
	extractor *Extractor
	questions *QuestionGenerator

	mu        sync.Mutex
	profile   domain.CandidateProfile
	phase     domain.Phase
	history   []domain.Message
	qa        []domain.QuestionAnswer
	idx       int
	started   time.Time
	earlyExit bool
}

// NewEngine constructs an engine in the Greeting phase.
func NewEngine(gen domain.GenerationClient, extractor *Extractor, questions *QuestionGenerator) *Engine {
	return &Engine{
		gen:       gen,
		extractor: extractor,
		questions: questions,
		phase:     domain.PhaseGreeting,
		started:   time.Now(),
	}
}

// phaseQuestions maps a missing profile field to the question that asks for it.
var phaseQuestions = map[string]string{
	domain.FieldFullName:         "What is your full name?",
	domain.FieldEmail:            "What's your email address?",
	domain.FieldPhone:            "And your phone number?",
	domain.FieldExperienceYears:  "How many years of professional experience do you have?",
	domain.FieldDesiredPositions: "What position(s) are you interested in?",
	domain.FieldLocation:         "Where are you currently located?",
	domain.FieldTechStack:        "Please list your tech stack (programming languages, frameworks, databases, and tools you're proficient in):",
}

var exitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^bye\b`),
	regexp.MustCompile(`^goodbye\b`),
	regexp.MustCompile(`\bexit\s+interview\b`),
	regexp.MustCompile(`\bquit\s+screening\b`),
	regexp.MustCompile(`\bend\s+chat\b`),
	regexp.MustCompile(`\bend\s+conversation\b`),
	regexp.MustCompile(`^stop\b`),
	regexp.MustCompile(`^exit\b`),
	regexp.MustCompile(`^quit\b`),
}

var exitWords = map[string]bool{
	"bye": true, "goodbye": true, "exit": true, "quit": true, "stop": true,
}

const fallbackGreeting = "Hello! I'm TalentScout AI, your hiring assistant. I'll help with your initial screening today. May I have your full name please?"

// StartSession produces the opening greeting and records it in the history.
func (e *Engine) StartSession(ctx context.Context) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	prompt := fmt.Sprintf(systemPromptTmpl, "Starting the conversation.", "{}") + greetingInstructionTmpl
	greeting, err := e.gen.Generate(ctx, prompt, domain.GenerateOptions{UseCache: true, Temperature: 0.8})
	if err != nil || strings.TrimSpace(greeting) == "" {
		slog.Debug("greeting generation unavailable, using canned greeting", slog.Any("error", err))
		greeting = fallbackGreeting
	}
	e.history = append(e.history, domain.Message{Role: domain.RoleAssistant, Content: greeting})
	return greeting
}

// ProcessMessage runs one conversation turn: record the message, honor exit
// intent, extract fields, then respond per the current phase. Every turn
// appends exactly one user and one assistant message to the history.
func (e *Engine) ProcessMessage(ctx context.Context, input string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history = append(e.history, domain.Message{Role: domain.RoleUser, Content: input})
	observability.MessagesProcessedTotal.WithLabelValues(string(e.phase)).Inc()

	var response string
	if checkExitIntent(input) {
		e.earlyExit = true
		e.phase = domain.PhaseConclusion
		response = e.conclusion(ctx, true)
	} else {
		e.extractor.Extract(ctx, &e.profile, e.phase, input)
		response = e.respond(ctx)
	}

	e.history = append(e.history, domain.Message{Role: domain.RoleAssistant, Content: response})
	return response
}

func (e *Engine) respond(ctx context.Context) string {
	switch e.phase {
	case domain.PhaseGreeting:
		e.phase = domain.PhaseInfoGathering
		name := e.profile.FullName
		if name == "" {
			name = "there"
		}
		return fmt.Sprintf("Nice to meet you, %s! I'll guide you through the screening process.\n\n%s", name, e.nextQuestion())

	case domain.PhaseInfoGathering:
		if e.profile.RequiredComplete() {
			e.phase = domain.PhaseQuestioning
			return e.beginAssessment(ctx)
		}
		return e.nextQuestion()

	case domain.PhaseQuestioning:
		if e.idx < len(e.qa) {
			last := e.history[len(e.history)-1]
			e.qa[e.idx].Answer = last.Content
			e.qa[e.idx].Answered = true
		}
		if e.idx < len(e.qa)-1 {
			e.idx++
			return fmt.Sprintf("Great answer! Next question:\n\n**Question %d:** %s", e.idx+1, e.qa[e.idx].Question)
		}
		e.phase = domain.PhaseConclusion
		return e.conclusion(ctx, false)

	case domain.PhaseConclusion:
		return e.conclusion(ctx, e.earlyExit)
	}
	return e.fallbackResponse()
}

// beginAssessment generates the question set, seeds the answer ledger and
// asks the first question.
func (e *Engine) beginAssessment(ctx context.Context) string {
	intro, qs := e.questions.Generate(ctx, e.profile.TechStack, e.profile.ExperienceYears)
	e.qa = make([]domain.QuestionAnswer, len(qs))
	for i, q := range qs {
		e.qa[i] = domain.QuestionAnswer{Question: q}
	}
	e.idx = 0
	return fmt.Sprintf("%s\n\n**Question 1:** %s", intro, qs[0])
}

func (e *Engine) nextQuestion() string {
	missing := e.profile.MissingFields()
	if len(missing) == 0 {
		return "Is there anything else you'd like to add about your experience or tech stack?"
	}
	field := missing[0]
	if q, ok := phaseQuestions[field]; ok {
		return q
	}
	return fmt.Sprintf("Could you provide your %s?", strings.ReplaceAll(field, "_", " "))
}

// conclusion builds the closing message. Early exits always use the
// deterministic farewell so a repeated turn re-emits it verbatim.
func (e *Engine) conclusion(ctx context.Context, early bool) string {
	name := e.profile.FullName
	if name == "" {
		name = "there"
	}
	if early {
		return fmt.Sprintf("Thank you for your time today, %s! Our team will review the information shared. We'll be in touch soon regarding next steps. Have a great day!", name)
	}

	tech := e.profile.TechStack
	if tech == "" {
		tech = "your background"
	}
	prompt := fmt.Sprintf(conclusionPromptTmpl, name, tech, e.profile.CompletionPercentage())
	out, err := e.gen.Generate(ctx, prompt, domain.GenerateOptions{UseCache: true, Temperature: 0.8})
	if err != nil || strings.TrimSpace(out) == "" {
		return fmt.Sprintf("Thank you for completing the screening, %s! Our team will review your experience with %s and get back to you within 2-3 business days. Have a great day!", name, tech)
	}
	return out
}

func (e *Engine) fallbackResponse() string {
	switch e.phase {
	case domain.PhaseInfoGathering:
		missing := e.profile.MissingFields()
		if len(missing) > 0 {
			return fmt.Sprintf("I'm still collecting your information. Could you please provide your %s?", strings.ReplaceAll(missing[0], "_", " "))
		}
		return "Thank you for that. Let's continue with the next question."
	case domain.PhaseQuestioning:
		return fmt.Sprintf("We're on question %d of %d. Could you please answer the current question?", e.idx+1, len(e.qa))
	default:
		return "I'm here to help with your initial screening. Could you please provide the information I asked for?"
	}
}

func checkExitIntent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, re := range exitPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return exitWords[lower]
}

// Profile returns a copy of the candidate profile.
func (e *Engine) Profile() domain.CandidateProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// Phase returns the current conversation phase.
func (e *Engine) Phase() domain.Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// History returns a copy of the conversation history.
func (e *Engine) History() []domain.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Message(nil), e.history...)
}

// QuestionAnswers returns a copy of the technical question ledger.
func (e *Engine) QuestionAnswers() []domain.QuestionAnswer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.QuestionAnswer(nil), e.qa...)
}

// SessionSummary is a point-in-time snapshot of session progress.
type SessionSummary struct {
	Candidate         domain.CandidateProfile `json:"candidate"`
	Phase             domain.Phase            `json:"phase"`
	QuestionsAsked    int                     `json:"questions_asked"`
	TotalQuestions    int                     `json:"total_questions"`
	DurationMinutes   float64                 `json:"duration_minutes"`
	CompletionPercent int                     `json:"completion"`
	MessageCount      int                     `json:"message_count"`
}

// Summary reports current session progress.
func (e *Engine) Summary() SessionSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	minutes := time.Since(e.started).Minutes()
	return SessionSummary{
		Candidate:         e.profile,
		Phase:             e.phase,
		QuestionsAsked:    e.idx,
		TotalQuestions:    len(e.qa),
		DurationMinutes:   float64(int(minutes*100+0.5)) / 100,
		CompletionPercent: e.profile.CompletionPercentage(),
		MessageCount:      len(e.history),
	}
}
