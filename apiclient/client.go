// Package apiclient is the single chokepoint for all communication with the
// upstream Room Finder REST API. It owns the bearer-token lifecycle and the
// response-shape normalization that turns the API's inconsistent envelopes
// into the one canonical shape the rest of the gateway consumes.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"roomfinder/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestError carries a failure reported by the upstream API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api request failed (status %d): %s", e.Status, e.Message)
}

// Client wraps HTTP access to the upstream API. The session store is
// constructor-injected so tests can run multiple simulated sessions; the
// in-memory token is lazily backfilled from the store so a client survives
// a gateway restart without re-login.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     *zap.Logger

	mu          sync.Mutex
	token       string
	tokenLoaded bool
}

// New builds a client for the given API base URL. httpClient may be nil, in
// which case a default client with a 30s timeout is used.
func New(baseURL string, store session.Store, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		store:      store,
		logger:     logger,
	}
}

// SetToken stores the bearer token in memory and writes it through to the
// session store. An empty token clears the session (logout).
func (c *Client) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.tokenLoaded = true
	c.mu.Unlock()

	if token == "" {
		return c.store.Clear(ctx)
	}
	return c.store.SetToken(ctx, token)
}

// Token returns the current bearer token, lazily backfilling the in-memory
// value from the session store on first use. Returns "" when no session
// is active.
func (c *Client) Token(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tokenLoaded {
		return c.token
	}
	tok, err := c.store.Token(ctx)
	if err != nil && err != session.ErrNoToken {
		c.logger.Warn("failed to read token from session store", zap.Error(err))
		return ""
	}
	c.token = tok
	c.tokenLoaded = true
	return c.token
}

// request performs an authenticated call against the upstream API and
// returns the decoded response body.
//
// Contract: Content-Type is always injected and Authorization is attached
// whenever a token is present. A JSON parse failure yields an empty body
// rather than an error. A non-2xx status, or an empty body, fails with a
// RequestError carrying the backend's message (or "Empty response from
// server"). On success the decoded body is returned verbatim; envelope
// normalization is layered on top by the typed methods.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) (map[string]any, error) {
	return c.do(ctx, method, endpoint, body, true)
}

// publicRequest is identical to request but never attaches an
// Authorization header. Used for endpoints that must work pre-login.
func (c *Client) publicRequest(ctx context.Context, method, endpoint string, body any) (map[string]any, error) {
	return c.do(ctx, method, endpoint, body, false)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, authed bool) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	if authed {
		if tok := c.Token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.logger.Debug("api request",
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("endpoint", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures propagate; listing call sites degrade to an
		// empty-result fallback instead of surfacing this to the user.
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", endpoint, err)
	}

	// A body that fails to parse is treated as empty, not fatal. The empty
	// body then trips the RequestError below instead of a parse panic.
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.logger.Debug("unparseable response body",
				zap.String("requestId", requestID),
				zap.Int("status", resp.StatusCode))
			payload = map[string]any{}
		}
	}

	c.logger.Debug("api response",
		zap.String("requestId", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || len(payload) == 0 {
		msg := messageFrom(payload)
		if msg == "" {
			msg = "Empty response from server"
		}
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}

	return payload, nil
}

// listPath builds a list endpoint with 1-indexed page and limit query
// parameters plus any extra filters.
func listPath(base string, page, limit int, extra url.Values) string {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	for key, vals := range extra {
		for _, v := range vals {
			if v != "" {
				q.Add(key, v)
			}
		}
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return base + "?" + q.Encode()
}

// messageFrom pulls the human-readable message out of a decoded body.
func messageFrom(payload map[string]any) string {
	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := payload["error"].(string); ok && msg != "" {
		return msg
	}
	return ""
}
