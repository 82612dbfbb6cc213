package example

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wortle/wortle-server/internal/cache"
	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/ratelimit"
)

// Service brokers example generation behind admission control and
// memoization: rate limit first, cache lookup second, upstream generation
// only on a miss.
type Service struct {
	limiter   ratelimit.Limiter
	cache     cache.Cache
	generator Generator
	logger    *slog.Logger
}

// New creates a new example Service
func New(limiter ratelimit.Limiter, c cache.Cache, generator Generator, logger *slog.Logger) *Service {
	return &Service{
		limiter:   limiter,
		cache:     c,
		generator: generator,
		logger:    logger,
	}
}

// Example returns the example sentence for a word, reporting whether it
// was served from cache. Returns model.ErrRateLimited when the client is
// over its window; that is an admission decision, not a failure.
func (s *Service) Example(ctx context.Context, clientKey, word string) (*model.Example, bool, error) {
	allowed, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		return nil, false, err
	}
	if !allowed {
		return nil, false, model.ErrRateLimited
	}

	key := strings.ToLower(word)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info("cache hit", slog.String("word", word))
		return cached, true, nil
	}
	if !errors.Is(err, model.ErrNotCached) {
		// A broken cache backend degrades to a miss
		s.logger.Warn("cache read failed", slog.String("word", word), slog.String("error", err.Error()))
	}

	s.logger.Info("generating example", slog.String("word", word))
	result, err := s.generator.Generate(ctx, word)
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Put(ctx, key, &result.Example); err != nil {
		s.logger.Warn("cache write failed", slog.String("word", word), slog.String("error", err.Error()))
	}

	return &result.Example, false, nil
}
