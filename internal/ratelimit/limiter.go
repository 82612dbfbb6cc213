package ratelimit

import (
	"context"
	"time"
)

// Limiter is the admission-control gate in front of example generation.
//
// Allow reports whether the caller identified by key may proceed right
// now. Rejection is normal control flow, not an error; the error return
// is reserved for backend failures (e.g. Redis being unreachable).
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Config holds sliding-window settings shared by all implementations
type Config struct {
	// Limit is the maximum number of admitted requests per key within
	// any trailing Window
	Limit int

	// Window is the trailing interval the limit applies to
	Window time.Duration
}

// DefaultConfig returns the fixed production limits
func DefaultConfig() Config {
	return Config{
		Limit:  10,
		Window: 60 * time.Second,
	}
}
