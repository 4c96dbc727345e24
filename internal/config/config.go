// Package config defines configuration parsing and helpers.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// ErrMissingCredential is returned when a required credential is absent at
// startup. It is fatal: no session may start without it.
var ErrMissingCredential = errors.New("missing credential")

// Generation provider selectors.
const (
	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Generation service (OpenAI-compatible chat completions endpoint).
	GenProvider  string        `env:"GEN_PROVIDER" envDefault:"openai"`
	GenAPIKey    string        `env:"GEN_API_KEY"`
	GenBaseURL   string        `env:"GEN_BASE_URL" envDefault:"https://api.openai.com/v1"`
	GenModel     string        `env:"GEN_MODEL" envDefault:"gpt-4o-mini"`
	GenMaxTokens int           `env:"GEN_MAX_TOKENS" envDefault:"1024"`
	GenTimeout   time.Duration `env:"GEN_TIMEOUT" envDefault:"60s"`

	// Bounded retry for rate-limit-class generation failures only.
	RetryMaxAttempts  int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryInitialDelay time.Duration `env:"RETRY_INITIAL_DELAY" envDefault:"1s"`
	RetryMultiplier   float64       `env:"RETRY_MULTIPLIER" envDefault:"2.0"`

	// Prompt cache: in-process FIFO by default; Redis when REDIS_ADDR is set.
	PromptCacheSize int           `env:"PROMPT_CACHE_SIZE" envDefault:"512"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisCacheTTL   time.Duration `env:"REDIS_CACHE_TTL" envDefault:"1h"`

	// Per-message processing ceiling wrapped around the engine call.
	ProcessTimeout time.Duration `env:"PROCESS_TIMEOUT" envDefault:"90s"`

	// HTTP server.
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"120s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"60"`
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	MaxMessageChars       int           `env:"MAX_MESSAGE_CHARS" envDefault:"4000"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"ai-intake-agent"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// Validate checks startup invariants. The real generation provider needs a
// credential; the stub does not.
func (c Config) Validate() error {
	if c.GenProvider == ProviderOpenAI && c.GenAPIKey == "" {
		return fmt.Errorf("%w: GEN_API_KEY not set", ErrMissingCredential)
	}
	return nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// RetryBackoff returns the retry schedule for the current environment; tests
// use much shorter delays so retry paths stay fast.
func (c Config) RetryBackoff() (attempts int, initial time.Duration, multiplier float64) {
	if c.IsTest() {
		return c.RetryMaxAttempts, 10 * time.Millisecond, 2.0
	}
	return c.RetryMaxAttempts, c.RetryInitialDelay, c.RetryMultiplier
}
