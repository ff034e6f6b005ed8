package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Some origins reject requests without a browser-style User-Agent, so the
// default mimics one.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config holds fetcher configuration. The zero value is usable; empty
// fields are filled with defaults by NewClient.
type Config struct {
	// Timeout bounds the whole fetch, connection through body read.
	// Default 30s.
	Timeout time.Duration

	// UserAgent overrides the User-Agent header sent with each request.
	UserAgent string

	// MaxBytes caps the response body size. Default 50 MiB.
	MaxBytes int64

	// Logger receives diagnostic records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default fetcher configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: defaultUserAgent,
		MaxBytes:  50 << 20,
	}
}

// FetchError reports a failed document download. It is fatal: the caller
// aborts the pipeline without retrying.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never produced a response
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error, if any.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client downloads document bytes. It is safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a fetch client, filling zero-valued config fields with
// defaults.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = def.MaxBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  cfg.Logger,
	}
}

// Fetch downloads the resource at url and returns its bytes. Any network
// failure or non-2xx status is returned as a *FetchError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("fetch failed", "stage", "fetch", "url", url, "error", err)
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("fetch returned non-success status",
			"stage", "fetch", "url", url, "status", resp.StatusCode)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBytes+1))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if int64(len(data)) > c.cfg.MaxBytes {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("response exceeds %d bytes", c.cfg.MaxBytes)}
	}

	c.log.Debug("fetch ok",
		"stage", "fetch", "url", url,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds())
	return data, nil
}
