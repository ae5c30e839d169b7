// Package openweather implements the HTTP transport shared by every call to an
// OpenWeatherMap-compatible API: authentication, rate limiting, status handling and decoding.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/UnknownOlympus/aether/internal/metrics"
	"golang.org/x/time/rate"
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs authenticated GET requests against the weather API.
type Client struct {
	client  HTTPClient       // HTTP client for making requests
	baseURL string           // Base URL of the API, e.g. https://api.openweathermap.org
	apiKey  string           // API key sent as the appid parameter
	log     *slog.Logger     // Logger for logging operations
	limiter *rate.Limiter    // Rate limiter
	metrics *metrics.Metrics // Request duration and error counters
}

// Config holds the settings needed to build a Client.
type Config struct {
	BaseURL   string
	APIKey    string
	RateLimit int           // Requests per second, zero or less disables limiting
	Timeout   time.Duration // Timeout of a single request
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// StatusError is returned when the API answers with an unexpected HTTP status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather API returned status %d: %s", e.Code, e.Body)
}

// Common errors for the weather API.
var (
	ErrUnauthorized = errors.New("weather API unauthorized (invalid API key)")
	ErrNotFound     = errors.New("weather API resource not found")
)

// NewClient creates a new weather API client with a default HTTP client.
func NewClient(cfg Config) *Client {
	const defaultTimeout = 10 * time.Second
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return NewClientWithHTTP(&http.Client{Timeout: cfg.Timeout}, newLimiter(cfg.RateLimit), cfg)
}

// NewClientWithHTTP allows injecting a custom HTTP client and limiter.
func NewClientWithHTTP(client HTTPClient, limiter *rate.Limiter, cfg Config) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		log:     cfg.Logger,
		limiter: limiter,
		metrics: cfg.Metrics,
	}
}

func newLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

// Get requests path with the given query, adds the API key and decodes the JSON answer into out.
// The endpoint label identifies the call in logs and metrics.
func (c *Client) Get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := url.Values{}
	for key, values := range query {
		params[key] = values
	}
	c.log.DebugContext(ctx, "Weather API request", "endpoint", endpoint, "url", reqURL.String(), "query", params.Encode())
	params.Set("appid", c.apiKey)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.client.Do(req)
	c.metrics.RequestSeconds.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	if err != nil {
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("failed to execute %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusUnauthorized, http.StatusForbidden:
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		return ErrUnauthorized
	case http.StatusNotFound:
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(string(body)))
	default:
		c.metrics.APIErrors.WithLabelValues(endpoint).Inc()
		c.log.ErrorContext(ctx, "Weather API error", "endpoint", endpoint, "status", resp.StatusCode, "body", string(body))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	c.log.DebugContext(ctx, "Weather API raw response", "endpoint", endpoint, "body", string(body))

	if err = json.Unmarshal(body, out); err != nil {
		c.log.ErrorContext(ctx, "Failed to parse weather API response", "endpoint", endpoint, "error", err)
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return nil
}
