// Package llmtext cleans structured output returned by language models:
// markdown fences around JSON payloads, prose mixed with the object, and
// similar formatting noise.
package llmtext

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*|\\s*```")

// StripCodeFences removes markdown code-fence wrappers (```json ... ```)
// from a model response.
func StripCodeFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(strings.TrimSpace(s), ""))
}

// ExtractJSONObject returns the first balanced {...} object found in s, or s
// unchanged when no opening brace exists. Models routinely wrap JSON in
// explanatory prose; scanning for the matching brace recovers the payload.
func ExtractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return s
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s
}

// CleanJSON strips fences, extracts the embedded object, and reports whether
// the result is valid JSON.
func CleanJSON(s string) (string, bool) {
	out := ExtractJSONObject(StripCodeFences(s))
	return out, json.Valid([]byte(out))
}
