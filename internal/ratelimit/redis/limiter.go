package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wortle/wortle-server/internal/dependencies/clock"
	"github.com/wortle/wortle-server/internal/ratelimit"
)

// allowScript prunes, counts and records in one atomic step so that
// concurrent instances cannot interleave between the count and the add
// and over-admit at the limit boundary.
//
// KEYS[1] window key
// ARGV[1] prune cutoff (nanoseconds)
// ARGV[2] limit
// ARGV[3] request score (nanoseconds)
// ARGV[4] request member
// ARGV[5] window TTL (milliseconds)
var allowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[2]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// Limiter is a Redis-backed sliding-window limiter for multi-instance
// deployments. Each key maps to a sorted set of request timestamps
// scored by nanoseconds.
type Limiter struct {
	client *redis.Client
	cfg    ratelimit.Config
	clock  clock.Clock
}

// New creates a Redis limiter using an existing client
func New(client *redis.Client, cfg ratelimit.Config, clk clock.Clock) *Limiter {
	return &Limiter{
		client: client,
		cfg:    cfg,
		clock:  clk,
	}
}

// Ensure Limiter implements the interface
var _ ratelimit.Limiter = (*Limiter)(nil)

// Allow prunes entries older than the window, checks the remaining count
// against the limit, and records the request only when admitted. Members
// carry a unique suffix so simultaneous requests never collapse into a
// single sorted-set entry.
//
// The TTL only keeps idle keys from accumulating, and is refreshed on
// every admitted request. Rejections are unrecorded by contract, so a
// key that sees nothing but rejections after its last admit may expire
// mid-window; that only ever re-admits a client whose window would have
// drained anyway, never the reverse.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.clock.Now()
	cutoff := now.Add(-l.cfg.Window)
	member := fmt.Sprintf("%d:%s", now.UnixNano(), uuid.NewString())

	admitted, err := allowScript.Run(ctx, l.client, []string{limiterKey(key)},
		cutoff.UnixNano(),
		l.cfg.Limit,
		now.UnixNano(),
		member,
		l.cfg.Window.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}

	return admitted == 1, nil
}
