package memory

import (
	"context"
	"sync"

	"github.com/wortle/wortle-server/internal/cache"
	"github.com/wortle/wortle-server/internal/model"
)

// Cache is an in-process memoization map. State is scoped to this
// process instance and lost on restart.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]model.Example
}

// New creates a new in-memory cache
func New() *Cache {
	return &Cache{
		entries: make(map[string]model.Example),
	}
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Get(ctx context.Context, key string) (*model.Example, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	example, ok := c.entries[key]
	if !ok {
		return nil, model.ErrNotCached
	}
	return &example, nil
}

func (c *Cache) Put(ctx context.Context, key string, example *model.Example) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = *example
	return nil
}
