package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wortle/wortle-server/internal/dependencies/clock"
	"github.com/wortle/wortle-server/internal/ratelimit"
)

// Limiter is an in-process sliding-window limiter.
//
// State is scoped to this process instance: under a multi-instance
// deployment each instance enforces its own window. That is the accepted
// trade-off of the in-memory backend; use the Redis backend for a global
// limit.
type Limiter struct {
	cfg   ratelimit.Config
	clock clock.Clock

	mu      sync.Mutex
	windows map[string][]time.Time
}

// New creates a new in-memory limiter
func New(cfg ratelimit.Config, clk clock.Clock) *Limiter {
	return &Limiter{
		cfg:     cfg,
		clock:   clk,
		windows: make(map[string][]time.Time),
	}
}

// Ensure Limiter implements the interface
var _ ratelimit.Limiter = (*Limiter)(nil)

// Allow prunes timestamps older than the window, then admits and records
// the request unless the key is already at its limit. A rejected request
// is not recorded.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.clock.Now()
	cutoff := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.windows[key]
	kept := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.cfg.Limit {
		l.windows[key] = kept
		return false, nil
	}

	l.windows[key] = append(kept, now)
	return true, nil
}
