// Package wiki checks whether rules wiki pages exist so sheet entries can be
// decorated with links
package wiki

//go:generate mockgen -destination=mock/mock_checker.go -package=wikimock github.com/KirkDiggler/rpg-sheet/internal/clients/wiki Checker

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// DefaultTimeout bounds a single existence check
	DefaultTimeout = 5 * time.Second
	// DefaultUserAgent is sent because the wiki rejects empty agents
	DefaultUserAgent = "Mozilla/5.0"

	missingPageMarker = "This page does not exist yet"
	maxBodyBytes      = 2 << 20
)

// Checker reports whether a page exists. Any failure reads as false.
type Checker interface {
	Exists(ctx context.Context, url string) bool
}

// Prober is a Checker that can tell a missing page from a failed request
type Prober interface {
	Checker
	Check(ctx context.Context, url string) (bool, error)
}

// Config configures the HTTP checker
type Config struct {
	// HTTPClient is optional; a client with Timeout is built when nil
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Validate sets defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Timeout < 0 {
		return errors.InvalidArgument("timeout cannot be negative")
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return nil
}

// HTTPChecker checks pages with a GET request
type HTTPChecker struct {
	client    *http.Client
	userAgent string
}

// NewHTTPChecker creates a checker
func NewHTTPChecker(cfg *Config) (*HTTPChecker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &HTTPChecker{client: client, userAgent: cfg.UserAgent}, nil
}

var _ Prober = (*HTTPChecker)(nil)

// Exists implements Checker
func (c *HTTPChecker) Exists(ctx context.Context, url string) bool {
	exists, err := c.Check(ctx, url)
	if err != nil {
		slog.DebugContext(ctx, "wiki check failed", "url", url, "error", err.Error())
		return false
	}
	return exists
}

// Check fetches the page. A 404 or the wiki's placeholder page is a definite
// false; transport failures and other non-2xx statuses are errors.
func (c *HTTPChecker) Check(ctx context.Context, url string) (bool, error) {
	if url == "" {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid url")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeUnavailable, "wiki request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return false, errors.Unavailablef("wiki returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read wiki page")
	}

	return !bytes.Contains(body, []byte(missingPageMarker)), nil
}
