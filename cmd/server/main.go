// Command server starts the TalentScout intake agent HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ai "github.com/fairyhunter13/ai-intake-agent/internal/adapter/ai"
	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/ai/openai"
	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/ai/stub"
	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/cache"
	httpserver "github.com/fairyhunter13/ai-intake-agent/internal/adapter/httpserver"
	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/observability"
	"github.com/fairyhunter13/ai-intake-agent/internal/adapter/questionbank"
	"github.com/fairyhunter13/ai-intake-agent/internal/app"
	"github.com/fairyhunter13/ai-intake-agent/internal/config"
	"github.com/fairyhunter13/ai-intake-agent/internal/domain"
	"github.com/fairyhunter13/ai-intake-agent/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Generation client: real provider wrapped in the prompt cache, or the
	// deterministic stub for local development and tests.
	var base domain.GenerationClient
	if cfg.GenProvider == config.ProviderStub || cfg.IsTest() {
		base = stub.New()
	} else {
		base = openai.New(cfg)
	}

	var promptCache domain.PromptCache
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisCacheTTL)
		defer func() { _ = rc.Close() }()
		promptCache = rc
		slog.Info("prompt cache backed by redis", slog.String("addr", cfg.RedisAddr))
	} else {
		promptCache = cache.NewMemory(cfg.PromptCacheSize)
	}
	gen := ai.NewCachedClient(base, promptCache)

	bank, err := questionbank.New(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint:gosec // Sampling variety, not security.
	if err != nil {
		slog.Error("failed to load question bank", slog.Any("error", err))
		os.Exit(1)
	}

	sessions := usecase.NewSessionManager(func() *usecase.Engine {
		return usecase.NewEngine(gen, usecase.NewExtractor(gen), usecase.NewQuestionGenerator(gen, bank))
	})

	srv := httpserver.NewServer(cfg, sessions)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", slog.Int("port", cfg.Port), slog.String("env", cfg.AppEnv))
		if err := srvHTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		slog.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
	slog.Info("server stopped")
}
