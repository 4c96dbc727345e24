package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"log/slog"

	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
	"github.com/fairyhunter13/ai-intake-agent/pkg/llmtext"
	"github.com/fairyhunter13/ai-intake-agent/pkg/validate"
)

// Extractor pulls candidate fields out of free-text messages. The primary
// path asks the generation service for a JSON object; when that fails for any
// reason a deterministic regex pass runs instead, so a message is never
// dropped unprocessed.
type Extractor struct {
	gen domain.GenerationClient
}

// NewExtractor constructs an Extractor.
func NewExtractor(gen domain.GenerationClient) *Extractor {
	return &Extractor{gen: gen}
}

var (
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe      = regexp.MustCompile(`\+?\d[\d\s-]{8,}\d`)
	experienceRe = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
	yearsHintRe  = regexp.MustCompile(`(?i)\d+\s*(year|yr)`)
	positionFill = regexp.MustCompile(`(?i)^(I am|I'm|looking for|interested in|apply for|wanted to be a|a|an)\s+`)
)

// fallbackTechKeywords is the closed keyword list scanned by the regex path.
var fallbackTechKeywords = []string{
	"python", "java", "javascript", "typescript", "react", "angular",
	"vue", "django", "flask", "spring", "node", "sql", "mysql",
	"postgresql", "mongodb", "aws", "docker", "kubernetes", "git",
	"html", "css", "php", "ruby", "c++", "c#", "go", "rust", "swift",
}

var techKeywordRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(fallbackTechKeywords))
	for i, tech := range fallbackTechKeywords {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tech) + `\b`)
	}
	return res
}()

var greetingWords = map[string]bool{"hi": true, "hello": true, "hey": true}

var fallbackNameDenylist = map[string]bool{
	"hi": true, "hello": true, "hey": true, "good": true, "morning": true,
	"afternoon": true, "evening": true, "dear": true, "sir": true, "madam": true,
}

// Extract merges whatever fields the input yields into the profile. It never
// returns an error: extraction failures degrade to the regex fallback and a
// no-op extraction is a valid outcome.
func (e *Extractor) Extract(ctx context.Context, profile *domain.CandidateProfile, phase domain.Phase, input string) {
	// Short bare names skip the model entirely.
	if profile.FullName == "" {
		if name, ok := bareName(input, greetingWords); ok {
			profile.FullName = name
			return
		}
	}

	existing, err := json.Marshal(profile.Fields())
	if err != nil {
		existing = []byte("{}")
	}
	prompt := fmt.Sprintf(extractionPromptTmpl, string(existing), input)

	resp, err := e.gen.Generate(ctx, prompt, domain.GenerateOptions{UseCache: false, Temperature: 0.1})
	if err != nil {
		slog.Debug("model extraction unavailable, using regex fallback", slog.Any("error", err))
		e.fallbackExtract(profile, phase, input)
		return
	}

	cleaned, valid := llmtext.CleanJSON(resp)
	if !valid {
		slog.Debug("model extraction returned malformed JSON, using regex fallback")
		e.fallbackExtract(profile, phase, input)
		return
	}

	var extracted map[string]any
	if err := json.Unmarshal([]byte(cleaned), &extracted); err != nil {
		e.fallbackExtract(profile, phase, input)
		return
	}
	for key, value := range extracted {
		if profile.ApplyExtracted(key, value) {
			slog.Debug("extracted field", slog.String("field", key))
		}
	}
}

// bareName recognizes a message that is nothing but a name: 1-3 purely
// alphabetic words of length >= 2, none of them in the denylist. The matched
// words are title-cased.
func bareName(input string, denylist map[string]bool) (string, bool) {
	words := strings.Fields(strings.TrimSpace(input))
	if len(words) < 1 || len(words) > 3 {
		return "", false
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 || !allLetters(w) || denylist[strings.ToLower(w)] {
			return "", false
		}
		out = append(out, titleCase(w))
	}
	return strings.Join(out, " "), true
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func titleCase(w string) string {
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// fallbackExtract is the deterministic path: a name heuristic with a wider
// denylist, then single-pass regex scans for email, phone, experience and
// known technology keywords, then a context guess when the scan found nothing.
func (e *Extractor) fallbackExtract(profile *domain.CandidateProfile, phase domain.Phase, text string) {
	if profile.FullName == "" {
		if name, ok := bareName(text, fallbackNameDenylist); ok && validate.Name(name) {
			profile.FullName = name
			return
		}
	}

	infoFound := false

	if m := emailRe.FindString(text); m != "" && profile.Email == "" && validate.Email(m) {
		profile.Email = m
		infoFound = true
	}
	if m := phoneRe.FindString(text); m != "" && profile.Phone == "" && validate.Phone(m) {
		profile.Phone = m
		infoFound = true
	}
	if m := experienceRe.FindStringSubmatch(text); m != nil && profile.ExperienceYears == "" && validate.Experience(m[1]) {
		profile.ExperienceYears = m[1]
		infoFound = true
	}

	var found []string
	for i, re := range techKeywordRes {
		if re.MatchString(text) {
			found = append(found, fallbackTechKeywords[i])
		}
	}
	if len(found) > 0 {
		current := profile.TechStack
		currentLower := strings.ToLower(current)
		var fresh []string
		for _, t := range found {
			if !strings.Contains(currentLower, strings.ToLower(t)) {
				fresh = append(fresh, t)
			}
		}
		if len(fresh) > 0 {
			profile.TechStack = strings.Trim(current+", "+strings.Join(fresh, ", "), ", ")
			infoFound = true
		}
	}

	// Context guess: a short free-form answer during info gathering is
	// assumed to answer the question just asked, but only for position and
	// location, and never when it looks numeric.
	if phase != domain.PhaseInfoGathering || infoFound {
		return
	}
	missing := profile.MissingFields()
	if len(missing) == 0 {
		return
	}
	trimmed := strings.TrimSpace(text)
	if len(strings.Fields(text)) > 6 || digitsOnlyRe.MatchString(trimmed) || yearsHintRe.MatchString(text) {
		return
	}
	switch missing[0] {
	case domain.FieldDesiredPositions:
		if len(profile.DesiredPositions) == 0 {
			pos := positionFill.ReplaceAllString(text, "")
			profile.DesiredPositions = []string{strings.Trim(pos, "\". ")}
		}
	case domain.FieldLocation:
		if profile.Location == "" {
			profile.Location = strings.Trim(trimmed, "\".")
		}
	}
}
