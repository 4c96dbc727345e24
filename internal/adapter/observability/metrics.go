// Package observability wires logging, metrics and tracing.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	GenRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gen_requests_total",
			Help: "Total number of generation requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
	GenRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gen_request_duration_seconds",
			Help:    "Generation request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation"},
	)

	PromptCacheEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prompt_cache_events_total",
			Help: "Prompt cache hits and misses",
		},
		[]string{"event"},
	)

	SessionsStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_started_total",
			Help: "Total number of screening sessions started",
		},
	)
	MessagesProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_processed_total",
			Help: "Total number of candidate messages processed by phase",
		},
		[]string{"phase"},
	)
	QuestionFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "question_fallbacks_total",
			Help: "Total number of times the curated question bank served a technology",
		},
	)
)

// InitMetrics registers all collectors with the default registry.
// Safe to call once at startup.
func InitMetrics() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		GenRequestsTotal,
		GenRequestDuration,
		PromptCacheEventsTotal,
		SessionsStartedTotal,
		MessagesProcessedTotal,
		QuestionFallbacksTotal,
	)
}

// ObserveGeneration records one generation call.
func ObserveGeneration(operation, outcome string, dur time.Duration) {
	GenRequestsTotal.WithLabelValues(operation, outcome).Inc()
	GenRequestDuration.WithLabelValues(operation).Observe(dur.Seconds())
}

// ObserveCacheEvent records a prompt cache hit or miss.
func ObserveCacheEvent(event string) {
	PromptCacheEventsTotal.WithLabelValues(event).Inc()
}

// HTTPMetricsMiddleware records request counts and latencies per chi route.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
