// Package ratelimit provides a fixed-window request limiter keyed by caller
// identity. The limiter is an explicitly-owned capability injected into the
// scraper rather than process-global state; the in-memory store suits a
// single instance and can be swapped for a shared store behind the same
// interface.
package ratelimit

import (
	"sync"
	"time"
)

// Default limits for scraper callers.
const (
	DefaultLimit  = 10
	DefaultWindow = time.Minute
)

// Limiter decides whether a caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Config holds fixed-window limiter settings.
type Config struct {
	Limit  int           // requests allowed per window; <=0 means unlimited
	Window time.Duration // rolling window length
}

// DefaultConfig returns the scraper's default of 10 requests per minute.
func DefaultConfig() *Config {
	return &Config{Limit: DefaultLimit, Window: DefaultWindow}
}

// window tracks request counts for one caller within the current window.
type window struct {
	count   int
	started time.Time
}

// FixedWindow is an in-memory Limiter. Counting is approximate under
// concurrent requests from the same key; the contract is "approximately N per
// window", not exact.
type FixedWindow struct {
	config  *Config
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time // injectable clock for tests
}

// NewFixedWindow creates an in-memory fixed-window limiter.
func NewFixedWindow(config *Config) *FixedWindow {
	if config == nil {
		config = DefaultConfig()
	}
	return &FixedWindow{
		config:  config,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow reports whether the caller may issue another request, counting the
// request when permitted.
func (f *FixedWindow) Allow(key string) bool {
	if f.config.Limit <= 0 {
		return true
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	w, exists := f.windows[key]
	if !exists || now.Sub(w.started) > f.config.Window {
		f.windows[key] = &window{count: 1, started: now}
		return true
	}

	if w.count >= f.config.Limit {
		return false
	}

	w.count++
	return true
}

// Unlimited is a Limiter that never refuses. Useful for tests and for
// in-process callers that are not subject to scraper limits.
type Unlimited struct{}

// Allow always reports true.
func (Unlimited) Allow(string) bool { return true }
