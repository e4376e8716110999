// Package generator is the client for the external horoscope generation service.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/creasty/defaults"
	"go.uber.org/zap"

	"github.com/hastrology/hastrology/internal/metrics"
	"github.com/hastrology/hastrology/pkg/horoscope"
)

const (
	generatePath    = "/generate_horoscope"
	maxResponseBody = 1 << 20
	maxErrorDetail  = 512
)

var (
	// ErrUnavailable is returned when the generation service refuses the connection
	ErrUnavailable = errors.New("AI_SERVER_UNAVAILABLE")
	// ErrTimeout is returned when the generation service does not answer in time
	ErrTimeout = errors.New("AI_SERVER_TIMEOUT")
	// ErrInvalidResponse is returned for a successful status with an unusable body
	ErrInvalidResponse = errors.New("AI_SERVER_INVALID_RESPONSE")
)

// Config holds generation service client settings
type Config struct {
	URL           string
	Timeout       time.Duration `default:"30s"`
	HealthTimeout time.Duration `default:"5s"`
}

// Client calls the generation service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	health     *http.Client
	logger     *zap.Logger
}

type generateRequest struct {
	DOB        string `json:"dob"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

type generateResponse struct {
	HoroscopeText string `json:"horoscope_text"`
	Cached        bool   `json:"cached"`
}

// New creates a Client. Zero durations in cfg take their defaults.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("apply generator defaults: %w", err)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("generator url is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		health:     &http.Client{Timeout: cfg.HealthTimeout},
		logger:     logger.Named("generator"),
	}, nil
}

// Generate posts the birth details and returns the generated text. It never retries.
func (c *Client) Generate(ctx context.Context, details horoscope.BirthDetails) (text string, err error) {
	start := time.Now()
	defer func() {
		metrics.GenerationDuration.Observe(time.Since(start).Seconds())
		metrics.GenerationsTotal.WithLabelValues(outcome(err)).Inc()
	}()

	body, err := json.Marshal(generateRequest{
		DOB:        details.DOB,
		BirthTime:  details.BirthTime,
		BirthPlace: details.BirthPlace,
	})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Requesting horoscope from generation service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = classify(err)
		c.logger.Error("Generation request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		err = classify(err)
		c.logger.Error("Reading generation response failed", zap.Error(err))
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = fmt.Errorf("generation service returned status %d: %s", resp.StatusCode, truncate(raw))
		c.logger.Error("Generation service error", zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", err
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Error("Invalid generation response", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if strings.TrimSpace(out.HoroscopeText) == "" {
		c.logger.Error("Generation response has no horoscope_text")
		return "", fmt.Errorf("%w: missing horoscope_text", ErrInvalidResponse)
	}

	c.logger.Info("Horoscope generated",
		zap.Bool("cached", out.Cached),
		zap.Duration("duration", time.Since(start)),
	)
	return out.HoroscopeText, nil
}

// HealthCheck reports whether GET {url}/ answers 200 within the health timeout.
func (c *Client) HealthCheck(ctx context.Context) bool {
	healthy := c.probe(ctx)
	if healthy {
		metrics.GeneratorHealthy.Set(1)
	} else {
		metrics.GeneratorHealthy.Set(0)
	}
	return healthy
}

func (c *Client) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		c.logger.Error("Health check request failed", zap.Error(err))
		return false
	}
	resp, err := c.health.Do(req)
	if err != nil {
		c.logger.Warn("Generation service health check failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))

	return resp.StatusCode == http.StatusOK
}

// classify maps transport failures onto the typed errors.
func classify(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("generation request: %w", err)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, ErrTimeout):
		return metrics.OutcomeTimeout
	case errors.Is(err, ErrInvalidResponse):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

func truncate(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorDetail {
		return s[:maxErrorDetail] + "..."
	}
	return s
}
