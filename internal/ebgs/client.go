// Package ebgs is a thin client for the EliteBGS statistics API. Lookups are
// by exact case-folded name; a zero-match result is ErrNotFound, everything
// transport-shaped (network failure, timeout, non-2xx) is a *TransportError.
// The client never retries; it only paces requests.
package ebgs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound means the API answered normally but knows no entity by that name.
var ErrNotFound = errors.New("ebgs: not found")

// TransportError is an infrastructure-level failure: the request never
// completed, timed out, or came back with a non-2xx status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ebgs: %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("ebgs: %s %s: status=%d", e.Op, e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues single-entity queries against the EliteBGS REST API.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient builds a Client for baseURL (e.g. https://elitebgs.app/api/ebgs/v4).
// timeout bounds every call; rps/burst pace requests so the faction fan-out
// does not hammer the API.
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int) *Client {
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// System looks up a system by name.
func (c *Client) System(ctx context.Context, name string) (*System, error) {
	var env envelope[System]
	if err := c.get(ctx, "/systems", name, &env); err != nil {
		return nil, err
	}
	if env.Total == 0 || len(env.Docs) == 0 {
		return nil, ErrNotFound
	}
	return &env.Docs[0], nil
}

// Faction looks up a faction by name.
func (c *Client) Faction(ctx context.Context, name string) (*Faction, error) {
	var env envelope[Faction]
	if err := c.get(ctx, "/factions", name, &env); err != nil {
		return nil, err
	}
	if env.Total == 0 || len(env.Docs) == 0 {
		return nil, ErrNotFound
	}
	return &env.Docs[0], nil
}

func (c *Client) get(ctx context.Context, path, name string, out any) error {
	reqURL := fmt.Sprintf("%s%s?name=%s", c.baseURL, path, url.QueryEscape(strings.ToLower(name)))

	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: "GET", URL: reqURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{Op: "GET", URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: "GET", URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Op: "GET", URL: reqURL, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Op: "GET", URL: reqURL, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
