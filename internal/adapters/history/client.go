// Package history is the HTTP client for the persistence API that stores
// training sessions and serves pre-aggregated leaderboards.
//
// Requests are fire-and-forget: no retry, no backoff. Any transport failure,
// non-2xx status or undecodable body maps to ErrSourceUnavailable so callers
// can substitute the fixed example data.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/denniswu/swinglab/internal/domain/leaderboard"
	"github.com/denniswu/swinglab/internal/domain/session"
	"github.com/denniswu/swinglab/pkg/logger"
	"github.com/denniswu/swinglab/pkg/metrics"
)

const defaultTimeout = 5 * time.Second

// Client talks to the persistence API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds each request. There is deliberately no retry on top.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the API at baseURL, e.g. "http://192.168.1.156:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("history")
	}
	return c
}

// History fetches all training sessions.
func (c *Client) History(ctx context.Context) ([]session.Record, error) {
	var records []session.Record
	if err := c.getJSON(ctx, "training_history", "/api/training-history", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AthleteHistory fetches one athlete's sessions. When the exact name matches
// nothing, the full history is fetched and filtered case-insensitively, the
// way the upstream resolves near-miss names.
func (c *Client) AthleteHistory(ctx context.Context, name string) ([]session.Record, error) {
	var records []session.Record
	path := "/api/training-history/" + url.PathEscape(name)
	if err := c.getJSON(ctx, "athlete_history", path, &records); err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return records, nil
	}

	all, err := c.History(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if strings.EqualFold(r.AthleteName, name) {
			records = append(records, r)
		}
	}
	return records, nil
}

// Leaderboard fetches the board pre-aggregated by the requested sort key.
// The server performs the same grouping as leaderboard.Rank; the client-side
// ranker is its offline equivalent, not a second source of truth.
func (c *Client) Leaderboard(ctx context.Context, key leaderboard.SortKey) ([]leaderboard.Entry, error) {
	var entries []leaderboard.Entry
	path := "/api/leaderboard/" + url.PathEscape(string(key))
	if err := c.getJSON(ctx, "leaderboard", path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// submitAck mirrors the POST acknowledgement document.
type submitAck struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

// Submit stores a new session document and returns the generated id. The
// result is not consumed by any aggregation logic.
func (c *Client) Submit(ctx context.Context, rec session.Record) (string, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/training-history", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordUpstreamFetchDuration("submit", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordUpstreamFetch("submit", "unavailable")
		return "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordUpstreamFetch("submit", "unavailable")
		return "", fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var ack submitAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		metrics.RecordUpstreamFetch("submit", "decode_error")
		return "", fmt.Errorf("%w: decode ack: %w", ErrSourceUnavailable, err)
	}
	metrics.RecordUpstreamFetch("submit", "ok")
	c.logger.Debug(ctx, "session submitted", logger.String("insertedId", ack.InsertedID))
	return ack.InsertedID, nil
}

// healthStatus mirrors the upstream health document.
type healthStatus struct {
	Status  string `json:"status"`
	MongoDB string `json:"mongodb"`
}

// Health probes the upstream service.
func (c *Client) Health(ctx context.Context) error {
	var status healthStatus
	if err := c.getJSON(ctx, "health", "/health", &status); err != nil {
		return err
	}
	if status.Status != "ok" {
		return fmt.Errorf("%w: upstream reports %q", ErrSourceUnavailable, status.Status)
	}
	return nil
}

// getJSON performs one GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordUpstreamFetchDuration(endpoint, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordUpstreamFetch(endpoint, "unavailable")
		c.logger.Warn(ctx, "upstream request failed",
			logger.String("endpoint", endpoint), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordUpstreamFetch(endpoint, "unavailable")
		c.logger.Warn(ctx, "upstream returned unexpected status",
			logger.String("endpoint", endpoint), logger.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordUpstreamFetch(endpoint, "decode_error")
		return fmt.Errorf("%w: decode response: %w", ErrSourceUnavailable, err)
	}
	metrics.RecordUpstreamFetch(endpoint, "ok")
	return nil
}
