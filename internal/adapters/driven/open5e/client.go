package open5e

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/logger"
)

const (
	// DefaultMaxRetries is the number of extra attempts after a 429 or 5xx.
	DefaultMaxRetries = 2

	// DefaultRetryDelay is the initial backoff between attempts.
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultUserAgent identifies the client to Open5e.
	DefaultUserAgent = "lorequery (+https://github.com/custodia-labs/lorequery)"

	// maxErrorBody caps how much of an error body ends up in an APIError.
	maxErrorBody = 512
)

// Config holds the client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	CacheTTL          time.Duration
	CacheSize         int
	// MaxRetries < 0 disables retries.
	MaxRetries int
	RetryDelay time.Duration
	UserAgent  string
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from resolved settings.
func ConfigFromSettings(s domain.Open5eSettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
		Burst:             s.Burst,
	}
}

// Client performs throttled, cached GET requests against Open5e.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, []byte]
	maxRetries int
	retryDelay time.Duration
	userAgent  string
}

// NewClient creates a new Open5e client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultOpen5eBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultOpen5eTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = domain.DefaultRequestBurst
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = domain.DefaultResponseCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = domain.DefaultResponseCacheSize
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cache:      expirable.NewLRU[string, []byte](cfg.CacheSize, nil, cfg.CacheTTL),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		userAgent:  cfg.UserAgent,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get fetches path with sanitized params and returns the raw body.
// Successful bodies are cached by full URL.
func (c *Client) get(ctx context.Context, path string, params map[string]any) ([]byte, error) {
	reqURL := c.baseURL + path
	if query := sanitizeParams(params).Encode(); query != "" {
		reqURL += "?" + query
	}

	if body, ok := c.cache.Get(reqURL); ok {
		logger.Debug("Open5e cache hit: %s", reqURL)
		return body, nil
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.backoff(ctx, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		body, err := c.do(ctx, reqURL)
		if err == nil {
			c.cache.Add(reqURL, body)
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil || !shouldRetry(err) {
			return nil, unwrapRetry(err)
		}
		logger.Debug("Open5e request failed (attempt %d): %v", attempt+1, err)
	}
	return nil, unwrapRetry(lastErr)
}

func (c *Client) do(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &retryAfterError{
			APIError: &APIError{
				StatusCode: resp.StatusCode,
				Message:    errorMessage(resp.Status, body),
				URL:        reqURL,
			},
			after: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	return body, nil
}

// backoff sleeps before the given attempt, honouring Retry-After.
func (c *Client) backoff(ctx context.Context, attempt int, lastErr error) error {
	delay := c.retryDelay << (attempt - 1)
	var ra *retryAfterError
	if errors.As(lastErr, &ra) && ra.after > 0 {
		delay = ra.after
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryAfterError carries the server's Retry-After hint alongside the APIError.
type retryAfterError struct {
	*APIError
	after time.Duration
}

func (e *retryAfterError) Unwrap() error {
	return e.APIError
}

func unwrapRetry(err error) error {
	var ra *retryAfterError
	if errors.As(err, &ra) {
		return ra.APIError
	}
	return err
}

func shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return retryable(apiErr.StatusCode)
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		return time.Until(t)
	}
	return 0
}

func errorMessage(status string, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		return status
	}
	return status + " - " + msg
}
