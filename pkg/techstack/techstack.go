// Package techstack categorizes free-text technology lists into a fixed
// taxonomy and maps claimed experience to a question difficulty tier.
package techstack

import (
	"regexp"
	"strconv"
	"strings"
)

// Difficulty tiers for technical questions.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

// CategoryOther collects tokens that match no taxonomy category.
const CategoryOther = "other"

type category struct {
	name     string
	keywords []string
}

// Closed taxonomy; evaluation order is fixed so short tokens land in the
// first category whose keyword matches them exactly.
var categories = []category{
	{"languages", []string{"python", "java", "c", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust", "php", "swift", "kotlin"}},
	{"frontend", []string{"react", "angular", "vue", "svelte", "html", "css", "jquery", "bootstrap", "tailwind"}},
	{"backend", []string{"django", "flask", "spring", "express", "node.js", "laravel", "rails", "asp.net"}},
	{"databases", []string{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra", "oracle"}},
	{"devops", []string{"docker", "kubernetes", "jenkins", "aws", "azure", "gcp", "terraform", "ansible"}},
	{"tools", []string{"git", "jira", "confluence", "postman", "vscode", "pycharm"}},
}

var splitRe = regexp.MustCompile(`[,;\s]+`)

// matches applies the taxonomy matching rule: tokens and keywords of length
// <= 2 require exact equality (so "c" never collides with "css" or "react");
// longer pairs accept containment in either direction to tolerate
// pluralization and abbreviation.
func matches(token, keyword string) bool {
	if len(keyword) <= 2 || len(token) <= 2 {
		return token == keyword
	}
	return strings.Contains(token, keyword) || strings.Contains(keyword, token)
}

// Parse splits a raw technology string on commas, semicolons and whitespace
// and buckets each lowercased token into taxonomy categories. Unmatched
// tokens land in the "other" bucket. An empty input yields an empty map.
func Parse(raw string) map[string][]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string][]string{}
	}
	tokens := splitRe.Split(strings.ToLower(raw), -1)

	result := map[string][]string{}
	categorized := map[string]bool{}
	for _, cat := range categories {
		var found []string
		seen := map[string]bool{}
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" || seen[tok] {
				continue
			}
			for _, kw := range cat.keywords {
				if matches(tok, kw) {
					found = append(found, tok)
					seen[tok] = true
					categorized[tok] = true
					break
				}
			}
		}
		if len(found) > 0 {
			result[cat.name] = found
		}
	}

	var other []string
	seen := map[string]bool{}
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || categorized[tok] || seen[tok] {
			continue
		}
		other = append(other, tok)
		seen[tok] = true
	}
	if len(other) > 0 {
		result[CategoryOther] = other
	}
	return result
}

// DifficultyLevel maps claimed experience years to a question tier:
// under 2 years beginner, under 5 intermediate, otherwise advanced.
// Absent or unparsable experience defaults to intermediate.
func DifficultyLevel(tech, experience string) string {
	_ = tech // tier currently depends on experience only
	years, err := strconv.ParseFloat(strings.TrimSpace(experience), 64)
	if err != nil {
		return Intermediate
	}
	switch {
	case years < 2:
		return Beginner
	case years < 5:
		return Intermediate
	default:
		return Advanced
	}
}
