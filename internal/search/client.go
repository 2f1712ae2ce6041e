package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"templatefinder/internal/config"
	"templatefinder/internal/logging"
	"templatefinder/internal/model"
)

// maxResponseBytes caps how much of a backend response is read.
const maxResponseBytes = 4 << 20

// Client is an HTTP implementation of Searcher.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	http      *http.Client
	searchURL string
}

var _ Searcher = (*Client)(nil)

// NewClient builds a Client for the configured search endpoint.
// Outbound requests are traced through otelhttp.
func NewClient(cfg config.BackendConfig) (*Client, error) {
	searchURL := cfg.SearchURL()
	u, err := url.Parse(searchURL)
	if err != nil {
		return nil, fmt.Errorf("parse search url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("search url must be http or https, got %q", searchURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("search url has no host: %q", searchURL)
	}
	if cfg.TimeoutSec <= 0 {
		return nil, fmt.Errorf("search timeout must be positive, got %ds", cfg.TimeoutSec)
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		searchURL: searchURL,
	}, nil
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.searchURL
}

// Search posts the profile as JSON and decodes the template list.
func (c *Client) Search(ctx context.Context, profile model.CompanyProfile) (*model.TemplateResults, error) {
	body, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rid := logging.RequestIDFromContext(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var out model.TemplateResults
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
	}
	out.Normalize()
	return &out, nil
}

// Ping sends a CORS preflight style OPTIONS request to the search URL.
// Any status below 500 means the backend is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, c.searchURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.CopyN(io.Discard, resp.Body, 4096)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("search backend unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
