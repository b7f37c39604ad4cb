// Package httpclient provides the HTTP client used to probe resolved names, with timeout and rate limiting.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"subburst/internal/platform/errors"
	"subburst/internal/platform/logx"
)

// Client is an HTTP client with a hard per-request timeout and optional rate limiting.
// Requests are never retried: a failed probe is simply dropped.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      logx.Logger
	config      Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the request timeout duration, body included.
	// Default: 9 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "subburst/1.0"
	UserAgent string

	// MaxBodySize caps how many bytes of the body are read.
	// Default: 1 MiB
	MaxBodySize int64

	// RateLimit is the maximum requests per second.
	// 0 means no rate limiting.
	RateLimit float64

	// RateLimitBurst is the burst size for rate limiting.
	// Default: 1
	RateLimitBurst int
}

const (
	defaultTimeout     = 9 * time.Second
	defaultUserAgent   = "subburst/1.0"
	defaultMaxBodySize = 1 << 20
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:        defaultTimeout,
		UserAgent:      defaultUserAgent,
		MaxBodySize:    defaultMaxBodySize,
		RateLimit:      0,
		RateLimitBurst: 1,
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	// Apply defaults for zero values
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = defaultMaxBodySize
	}
	if config.RateLimitBurst <= 0 {
		config.RateLimitBurst = 1
	}

	var rateLimiter *rate.Limiter
	if config.RateLimit > 0 {
		rateLimiter = rate.NewLimiter(rate.Limit(config.RateLimit), config.RateLimitBurst)
	}

	// transporte propio: el pool de conexiones no se comparte entre clientes
	httpClient := &http.Client{
		Timeout:   config.Timeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}

	return &Client{
		httpClient:  httpClient,
		rateLimiter: rateLimiter,
		logger:      logger.With("component", "httpx"),
		config:      config,
	}
}

// Get performs a single GET request. The caller must close the body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limit wait failed")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("HTTP request failed",
			"url", url,
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, classify(err, url)
	}

	c.logger.Debug("HTTP response received",
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// ReadBody reads at most MaxBodySize bytes of the response body and closes it.
func (c *Client) ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodySize))
	if err != nil {
		return nil, classify(err, requestURL(resp))
	}
	return body, nil
}

func classify(err error, url string) error {
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return errors.Wrapf(errors.ErrTimeout, "GET %s", url)
	}
	return errors.Wrapf(errors.ErrConnectionFailed, "GET %s: %v", url, err)
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return "(unknown)"
	}
	return resp.Request.URL.String()
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, rate_limit=%.1f/s}",
		c.config.Timeout,
		c.config.RateLimit,
	)
}
