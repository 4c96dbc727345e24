// Package openai implements a generation client backed by an OpenAI-compatible
// chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/ai/tokencount"
	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/observability"
	"github.com/fairyhunter13/ai-intake-agent/internal/config"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
)

// Client implements domain.GenerationClient against a chat completions endpoint.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

// New constructs a client with the configured request timeout.
func New(cfg config.Config) *Client {
	return &Client{cfg: cfg, hc: &http.Client{Timeout: cfg.GenTimeout}}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt as a single user message and returns the first
// choice's content. Rate-limit responses are retried with exponential backoff
// up to the configured attempt count; every other failure is permanent so the
// caller falls back immediately.
func (c *Client) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	attempts, initial, multiplier := c.cfg.RetryBackoff()

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = initial
	expo.Multiplier = multiplier
	expo.RandomizationFactor = 0
	expo.MaxElapsedTime = 0

	start := time.Now()
	var out string
	op := func() error {
		var err error
		out, err = c.generateOnce(ctx, prompt, opts)
		return err
	}
	err := backoff.Retry(op, backoff.WithMaxRetries(backoff.WithContext(expo, ctx), uint64(attempts-1)))
	dur := time.Since(start)

	if err != nil {
		observability.ObserveGeneration("generate", "error", dur)
		slog.Warn("generation failed",
			slog.Any("error", err),
			slog.Duration("duration", dur))
		return "", err
	}

	observability.ObserveGeneration("generate", "success", dur)
	slog.Debug("generation completed",
		slog.Int("prompt_tokens", tokencount.Estimate(prompt, c.cfg.GenModel)),
		slog.Int("output_tokens", tokencount.Estimate(out, c.cfg.GenModel)),
		slog.Duration("duration", dur))
	return out, nil
}

func (c *Client) generateOnce(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.GenModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.cfg.GenMaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("op=openai.Generate marshal: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GenBaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("op=openai.Generate request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.GenAPIKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		// Retryable: quota pressure usually clears within the backoff window.
		return "", fmt.Errorf("%w: upstream status 429", domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", backoff.Permanent(fmt.Errorf("%w: upstream status %d: %s",
			domain.ErrGenerationUnavailable, resp.StatusCode, string(snippet)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: decode: %v", domain.ErrMalformedOutput, err))
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", backoff.Permanent(fmt.Errorf("%w: empty choices", domain.ErrMalformedOutput))
	}
	return cr.Choices[0].Message.Content, nil
}
