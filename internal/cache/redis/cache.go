package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wortle/wortle-server/internal/cache"
	"github.com/wortle/wortle-server/internal/model"
)

// Key prefix for cached examples
const keyPrefix = "wortle:example"

// Cache is a Redis-backed memoization store shared across instances.
// Entries carry no TTL, matching the memoization contract.
type Cache struct {
	client *redis.Client
}

// New creates a Redis cache using an existing client
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Get(ctx context.Context, key string) (*model.Example, error) {
	data, err := c.client.Get(ctx, exampleKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotCached
		}
		return nil, err
	}

	var example model.Example
	if err := json.Unmarshal(data, &example); err != nil {
		return nil, err
	}
	return &example, nil
}

func (c *Cache) Put(ctx context.Context, key string, example *model.Example) error {
	data, err := json.Marshal(example)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, exampleKey(key), data, 0).Err()
}

// exampleKey returns the Redis key for a normalized word
func exampleKey(word string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, word)
}
