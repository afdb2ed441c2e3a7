// Package fetch retrieves the remote documents a generation run needs: the
// sheet CSV export, the style definition, and the locale document. Responses
// may be cached; entities built from them are not.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single document fetch.
	DefaultTimeout = 30 * time.Second

	// RateLimit caps outgoing requests per second. Generation runs issue at
	// most three fetches, but the limiter keeps repeated manual re-triggers
	// polite toward the export endpoints.
	RateLimit = 5.0

	// maxDocumentSize bounds a fetched document to protect against a
	// misbehaving endpoint streaming forever.
	maxDocumentSize = 32 << 20
)

// ErrBadStatus indicates a non-2xx response for a remote document.
var ErrBadStatus = errors.New("unexpected HTTP status")

// Client is a rate-limited HTTP client for remote document fetches.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *Cache
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache attaches a document cache consulted before the network.
func WithCache(cache *Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets the operational logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a document fetch client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the document at url, naming the resource in any error so
// the caller can surface which fetch failed. Cached documents are returned
// without touching the network.
func (c *Client) Fetch(ctx context.Context, name, url string) (string, error) {
	if c.cache != nil {
		if body, ok, err := c.cache.Get(url); err == nil && ok {
			c.logger.Debug("document cache hit", zap.String("resource", name), zap.String("url", url))
			return body, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("fetching %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", name, err)
	}

	c.logger.Debug("fetching document", zap.String("resource", name), zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: %w: %s", name, ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}

	if c.cache != nil {
		if err := c.cache.Put(url, string(body)); err != nil {
			c.logger.Warn("caching document failed", zap.String("url", url), zap.Error(err))
		}
	}

	return string(body), nil
}
