// Package client is a typed Go client for the Hastrology HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/user"
)

const (
	defaultTimeout  = 60 * time.Second
	maxResponseBody = 1 << 20
)

// APIError is a failure envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	if len(e.Errors) > 0 {
		msg += " (" + strings.Join(e.Errors, "; ") + ")"
	}
	return msg
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// Health is the readiness report of the server.
type Health struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
	AIServer string `json:"ai_server"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// Client calls the Hastrology API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New creates a Client for the server at baseURL, e.g. http://localhost:5001.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Register registers or logs in a wallet and keeps the returned token.
func (c *Client) Register(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error) {
	var out user.RegisterResponse
	status, err := c.do(ctx, http.MethodPost, "/api/user/register", req, &out)
	if err != nil {
		return nil, err
	}
	out.Created = status == http.StatusCreated
	c.SetToken(out.Token)
	return &out, nil
}

// Me returns the profile of the token owner.
func (c *Client) Me(ctx context.Context) (*user.User, error) {
	var out struct {
		User *user.User `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/user/me", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Status reports today's horoscope state for wallet.
func (c *Client) Status(ctx context.Context, wallet string) (*horoscope.StatusResult, error) {
	path := "/api/horoscope/status?" + url.Values{"walletAddress": {wallet}}.Encode()

	var out horoscope.StatusResult
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Confirm submits a payment signature and returns the generated horoscope.
func (c *Client) Confirm(ctx context.Context, req *horoscope.ConfirmRequest) (*horoscope.ConfirmResult, error) {
	var out horoscope.ConfirmResult
	if _, err := c.do(ctx, http.MethodPost, "/api/horoscope/confirm", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History lists past horoscopes, newest first. A zero limit uses the server default.
func (c *Client) History(ctx context.Context, wallet string, limit int) ([]*horoscope.Horoscope, error) {
	path := "/api/horoscope/history/" + url.PathEscape(wallet)
	if limit != 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var out struct {
		Horoscopes []*horoscope.Horoscope `json:"horoscopes"`
		Count      int                    `json:"count"`
	}
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Horoscopes, nil
}

// Health fetches the readiness report. A degraded server is not an error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	_, err := c.do(ctx, http.MethodGet, "/api/health", nil, &out)
	if err != nil && !IsStatus(err, http.StatusServiceUnavailable) {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env apphttp.ErrorResponse
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
			apiErr.Errors = env.Errors
		}
		// Some failures (degraded health) still carry a typed body.
		if out != nil {
			_ = json.Unmarshal(raw, out)
		}
		return resp.StatusCode, apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
