// Package tokencount estimates token counts for logging and budget checks.
package tokencount

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Estimate returns the token count of text for the given model, falling back
// to a length/4 heuristic when the model's encoding is unknown.
func Estimate(text, model string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
	}
	if err != nil {
		return len(text) / 4
	}
	return len(enc.Encode(text, nil, nil))
}
