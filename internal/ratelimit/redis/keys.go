package redis

import "fmt"

// Key prefix for all rate-limit data
const keyPrefix = "wortle:ratelimit"

// limiterKey returns the Redis key for a client's request window
func limiterKey(clientKey string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, clientKey)
}
