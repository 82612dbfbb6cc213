package cache

import (
	"context"

	"github.com/wortle/wortle-server/internal/model"
)

// Cache memoizes generated examples against their input word.
//
// Keys are case-folded by the caller before they reach the cache, so a
// key is an exact, already-normalized match. Entries are never evicted
// or expired: once a word has been generated, the stored example is
// stable for the life of the backing store. Unbounded growth (and, for
// the in-memory backend, loss on restart) is a deliberate, documented
// trade-off of this design.
type Cache interface {
	// Get returns the cached example for a key, or model.ErrNotCached
	Get(ctx context.Context, key string) (*model.Example, error)

	// Put stores the example for a key
	Put(ctx context.Context, key string, example *model.Example) error
}
