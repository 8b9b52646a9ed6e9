// Package shortener talks to the remote link-shortening API.
package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/csheth/shortlink/internal/urlcheck"
)

// DefaultBaseURL is the local development endpoint used when nothing is configured.
const DefaultBaseURL = "http://localhost:8000"

const maxResponseBytes = 1 << 20

// ErrEmptyResponse is returned when a successful response carries no short link.
var ErrEmptyResponse = errors.New("shortener returned an empty short_url")

// Request is the JSON body sent to POST /urls.
type Request struct {
	URL string `json:"url"`
}

// Result is the JSON body returned by POST /urls.
type Result struct {
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("shortener API error: %s", e.Status)
	}
	return fmt.Sprintf("shortener API error: %s (%s)", e.Status, e.Body)
}

// Client shortens a long URL.
type Client interface {
	Shorten(ctx context.Context, rawURL string) (Result, error)
}

// Config describes how to build an HTTP client for the API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	base   string
	client *http.Client
	logger *zap.Logger
}

// New validates cfg and returns a ready client.
func New(cfg Config) (*HTTPClient, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if !urlcheck.Valid(base) {
		return nil, fmt.Errorf("invalid API base %q", cfg.BaseURL)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		base:   base,
		client: pickHTTPClient(cfg.HTTPClient),
		logger: logger,
	}, nil
}

// BaseURL returns the normalized API base.
func (c *HTTPClient) BaseURL() string {
	return c.base
}

// Shorten posts rawURL to {base}/urls and decodes the result verbatim.
func (c *HTTPClient) Shorten(ctx context.Context, rawURL string) (Result, error) {
	buf, err := json.Marshal(Request{URL: rawURL})
	if err != nil {
		return Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/urls", bytes.NewReader(buf))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("shorten request failed", zap.String("url", rawURL), zap.Error(err))
		return Result{}, fmt.Errorf("post %s/urls: %w", c.base, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("shorten response",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var result Result
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode shortener response: %w", err)
	}
	if strings.TrimSpace(result.ShortURL) == "" {
		return Result{}, ErrEmptyResponse
	}
	return result, nil
}

// pickHTTPClient leaves Timeout unset so the transport defaults and the
// caller's context bound the request.
func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	return &http.Client{}
}

var _ Client = (*HTTPClient)(nil)
