// internal/bms/client.go
//
// Package bms is the HTTP client for the Bench Management Service REST API,
// the system of record for all bench data. One method per backend operation;
// no retries, no caching, no batching. Mutations are fire-and-forget from a
// correctness standpoint: callers refetch the slices they care about.
package bms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnauthorized is wrapped by every RequestError with a 401 status so
// handlers can funnel session expiry to a single redirect path.
var ErrUnauthorized = errors.New("bms: unauthorized")

// RequestError is a non-2xx response from the BMS. Message is the
// server-provided message when the body carried one, otherwise generic.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("bms: %d: %s", e.Status, e.Message)
}

func (e *RequestError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Client calls the BMS API. All resource paths are rooted at /bms under the
// configured base URL.
type Client struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

// New builds a Client for the given base URL (scheme://host[:port], no
// trailing /bms). Timeout is the transport-level ceiling for every call.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("bms: base URL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("bms: invalid base URL: %w", err)
	}
	return &Client{
		base: baseURL + "/bms",
		hc:   &http.Client{Timeout: timeout},
		log:  logger,
	}, nil
}

type ctxKey string

const tokenKey ctxKey = "bmsToken"

// WithToken returns a context carrying the bearer token for subsequent
// client calls. The session middleware sets this once per request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the bearer token placed by WithToken, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok && t != ""
}

// do performs one API call. body (if non-nil) is JSON-encoded; the response
// body is decoded into out (if non-nil). Non-2xx responses become a
// *RequestError carrying the server message when present.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	_, raw, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("bms response decode failed",
			zap.String("path", path), zap.Error(err))
		return fmt.Errorf("bms: decode %s: %w", path, err)
	}
	return nil
}

// Ping reports whether the BMS is reachable. A 401 still proves the
// service is up, so it counts as healthy.
func (c *Client) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/details", nil, nil, nil)
	if err != nil && errors.Is(err, ErrUnauthorized) {
		return nil
	}
	return err
}

// doText is for the two legacy endpoints whose success body is plain text.
func (c *Client) doText(ctx context.Context, method, path string, query url.Values, body any) (string, error) {
	_, raw, err := c.roundTrip(ctx, method, path, query, body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, []byte, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("bms: encode %s: %w", path, err)
		}
		rdr = bytes.NewReader(b)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return nil, nil, fmt.Errorf("bms: build request %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("bms request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, nil, fmt.Errorf("bms: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("bms: read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{
			Status:  resp.StatusCode,
			Message: serverMessage(raw, resp.StatusCode),
		}
		c.log.Warn("bms error response",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", reqErr.Message))
		return nil, nil, reqErr
	}
	return resp, raw, nil
}

// serverMessage pulls a human-readable message out of an error body:
// a "message" or "error" JSON field if present, the body text if short,
// otherwise a generic message.
func serverMessage(raw []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if s := strings.TrimSpace(string(raw)); s != "" && len(s) <= 200 && !strings.HasPrefix(s, "{") && !strings.HasPrefix(s, "<") {
		return s
	}
	return fmt.Sprintf("request failed (%s)", http.StatusText(status))
}
