// Package stub implements a deterministic generation client for development
// and tests. Outputs are keyed on recognizable prompt fragments so the
// conversation engine exercises its real code paths without network access.
package stub

import (
	"context"
	"strings"

	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// Client returns canned responses. The zero value is ready to use.
type Client struct{}

// New constructs a stub client.
func New() *Client { return &Client{} }

// Generate inspects the prompt and returns a fixed response of the matching
// kind: three questions, an empty extraction object, a conclusion, or a
// greeting.
func (c *Client) Generate(_ context.Context, prompt string, _ domain.GenerateOptions) (string, error) {
	switch {
	case strings.Contains(prompt, "technical interview questions"):
		return "Q1. Describe a project where you applied this technology end to end?\n" +
			"Q2. How would you debug a performance regression in a production system?\n" +
			"Q3. You inherit a legacy codebase with no tests. Where do you start and why?", nil
	case strings.Contains(prompt, "Extract candidate information"):
		return "{}", nil
	case strings.Contains(prompt, "conclusion"):
		return "Thank you for your time today! Your background looks interesting and our team will review your answers. We'll be in touch within a few business days.", nil
	default:
		return "Hello! I'm TalentScout AI, your hiring assistant for today's initial screening. It only takes 5-7 minutes. May I have your full name please?", nil
	}
}
