package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts served requests by route pattern, method and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hastrology_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency by route pattern
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hastrology_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hastrology_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// GenerationsTotal counts calls to the generation service by outcome
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hastrology_generations_total",
			Help: "Total number of horoscope generation calls",
		},
		[]string{"outcome"},
	)

	// GenerationDuration tracks how long the generation service takes
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hastrology_generation_duration_seconds",
			Help:    "Horoscope generation duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	// ConfirmationsTotal counts confirm requests by outcome
	ConfirmationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hastrology_confirmations_total",
			Help: "Total number of horoscope confirmations",
		},
		[]string{"outcome"},
	)

	// TokensIssued counts issued session tokens
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hastrology_tokens_issued_total",
			Help: "Total number of session tokens issued",
		},
	)

	// GeneratorHealthy is 1 when the last health probe succeeded
	GeneratorHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hastrology_generator_healthy",
			Help: "Whether the horoscope generation service answered the last health probe",
		},
	)
)

// Outcome label values shared by the generation and confirmation counters.
const (
	OutcomeSuccess     = "success"
	OutcomeExists      = "exists"
	OutcomeUnavailable = "unavailable"
	OutcomeTimeout     = "timeout"
	OutcomeInvalid     = "invalid_response"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
)
