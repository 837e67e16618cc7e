// Package timeouts provides centralized timeout values for handler operations.
//
// These bound the context for BMS API calls and audit writes inside HTTP
// handlers. Centralized values keep pages consistent and make it easy to
// tune the whole app at once.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-resource BMS reads and form posts
//   - Medium: list fetches and pages that fan out over a few slices
//   - Long: report builds and CSV exports over date ranges
package timeouts

import (
	"context"
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-resource reads and form posts.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list fetches and multi-slice pages.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for report builds and exports.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Config holds timeout overrides. Zero values keep the current setting.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// Configure sets custom timeout values during startup, before handlers are
// registered. Zero values in the config are ignored.
func Configure(c Config) {
	mu.Lock()
	defer mu.Unlock()
	if c.Ping > 0 {
		ping = c.Ping
	}
	if c.Short > 0 {
		short = c.Short
	}
	if c.Medium > 0 {
		medium = c.Medium
	}
	if c.Long > 0 {
		long = c.Long
	}
}

// WithShort derives a Short-bounded context from the request context.
func WithShort(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Short())
}

// WithMedium derives a Medium-bounded context from the request context.
func WithMedium(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Medium())
}

// WithLong derives a Long-bounded context from the request context.
func WithLong(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Long())
}
