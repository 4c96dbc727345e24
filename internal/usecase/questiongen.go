package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/observability"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
	"github.com/fairyhunter13/ai-intake-agent/pkg/techstack"
)

// QuestionGenerator builds the technical assessment: exactly 3 questions per
// technology in the candidate's stack, model-generated when possible and
// bank-served otherwise.
type QuestionGenerator struct {
	gen  domain.GenerationClient
	bank domain.QuestionBank
}

// NewQuestionGenerator constructs a QuestionGenerator.
func NewQuestionGenerator(gen domain.GenerationClient, bank domain.QuestionBank) *QuestionGenerator {
	return &QuestionGenerator{gen: gen, bank: bank}
}

var (
	questionLineRe  = regexp.MustCompile(`^[\dQq]`)
	questionStripRe = regexp.MustCompile(`^[\dQq.\s-]+`)
)

func naiveSplitCommas(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Generate returns the assessment intro line and the full ordered question
// list for the given tech stack and claimed experience.
func (g *QuestionGenerator) Generate(ctx context.Context, techStack, experience string) (string, []string) {
	if techStack == "" {
		techStack = "various technologies"
	}
	if experience == "" {
		experience = "mid-level"
	}

	parsed := techstack.Parse(techStack)
	var allTechs []string
	for _, toks := range parsed {
		allTechs = append(allTechs, toks...)
	}
	if len(allTechs) == 0 {
		allTechs = naiveSplitCommas(techStack)
	}
	allTechs = dedupeSorted(allTechs)

	var questions []string
	for _, tech := range allTechs {
		difficulty := techstack.DifficultyLevel(tech, experience)
		qs, err := g.generateForTech(ctx, tech, experience)
		if err != nil || len(qs) < 3 {
			slog.Debug("serving curated questions",
				slog.String("tech", tech),
				slog.String("difficulty", difficulty),
				slog.Any("error", err))
			observability.QuestionFallbacksTotal.Inc()
			qs = g.bank.Questions(tech, difficulty)
		}
		questions = append(questions, qs[:3]...)
	}
	if len(questions) == 0 {
		observability.QuestionFallbacksTotal.Inc()
		questions = g.bank.Questions(techStack, techstack.Intermediate)
	}

	intro := fmt.Sprintf("Excellent. Based on your profile, I've prepared a technical assessment to discuss your expertise in **%s**.\n\nI have %d questions for you, covering each of these areas. Let's begin.",
		techStack, len(questions))
	return intro, questions
}

// generateForTech asks the model for 3 questions about one technology. A
// fresh UUID in the prompt defeats prompt caching so repeat candidates with
// the same stack get variety.
func (g *QuestionGenerator) generateForTech(ctx context.Context, tech, experience string) ([]string, error) {
	prompt := fmt.Sprintf(questionGenerationPromptTmpl, tech, experience, uuid.NewString())
	resp, err := g.gen.Generate(ctx, prompt, domain.GenerateOptions{UseCache: false, Temperature: 0.7})
	if err != nil {
		return nil, err
	}
	return parseQuestions(resp), nil
}

// parseQuestions keeps lines that look like numbered questions or contain a
// question mark, strips numbering prefixes, and drops anything left without a
// question mark.
func parseQuestions(resp string) []string {
	var out []string
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !questionLineRe.MatchString(line) && !strings.Contains(line, "?") {
			continue
		}
		clean := questionStripRe.ReplaceAllString(line, "")
		if strings.Contains(clean, "?") {
			out = append(out, clean)
		}
	}
	return out
}

func dedupeSorted(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
