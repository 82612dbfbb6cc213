package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wortle/wortle-server/internal/cache"
	cachememory "github.com/wortle/wortle-server/internal/cache/memory"
	cacheredis "github.com/wortle/wortle-server/internal/cache/redis"
	"github.com/wortle/wortle-server/internal/dependencies/clock"
	"github.com/wortle/wortle-server/internal/dependencies/random"
	"github.com/wortle/wortle-server/internal/ratelimit"
	ratelimitmemory "github.com/wortle/wortle-server/internal/ratelimit/memory"
	ratelimitredis "github.com/wortle/wortle-server/internal/ratelimit/redis"
	"github.com/wortle/wortle-server/internal/services/example"
	"github.com/wortle/wortle-server/internal/services/identity"
	"github.com/wortle/wortle-server/internal/storage"
	"github.com/wortle/wortle-server/internal/storage/memory"
	"github.com/wortle/wortle-server/internal/storage/postgres"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// Backend constants for the rate limiter and generation cache
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.PlayerStore

	// RedisClient is shared by the Redis-backed limiter and cache; nil
	// when neither backend is redis
	RedisClient *redis.Client

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Capabilities
	Limiter ratelimit.Limiter
	Cache   cache.Cache

	// Services
	IdentityService *identity.Service
	ExampleService  *example.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger

	// StorageType selects the player store backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresConfig holds connection settings (required if StorageType is "postgres")
	PostgresConfig *postgres.Config

	// RateLimitBackend and CacheBackend select "memory" or "redis"
	// If empty, both default to "memory"
	RateLimitBackend string
	CacheBackend     string
	// RedisURL is required if either backend is "redis"
	RedisURL string

	// OpenAIAPIKey gates the example generator; empty means the
	// generation endpoint answers with a configuration error
	OpenAIAPIKey string

	// Verifier overrides the Google verifier (useful for testing)
	Verifier identity.Verifier
	// Generator overrides the OpenAI generator (useful for testing)
	Generator example.Generator
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	limiter, err := newLimiter(cfg, redisClient, clk)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	exampleCache, err := newCache(cfg, redisClient)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	verifier := cfg.Verifier
	if verifier == nil {
		verifier = identity.NewGoogleVerifier(identity.GoogleVerifierConfig{})
	}

	generator := cfg.Generator
	if generator == nil {
		generator = example.NewOpenAIGenerator(example.OpenAIGeneratorConfig{
			APIKey: cfg.OpenAIAPIKey,
		})
	}

	names := identity.NewDisplayNameGenerator(rnd)
	identityService := identity.New(verifier, store, names, logger)
	exampleService := example.New(limiter, exampleCache, generator, logger)

	return &App{
		Storage:         store,
		RedisClient:     redisClient,
		Clock:           clk,
		Random:          rnd,
		Limiter:         limiter,
		Cache:           exampleCache,
		IdentityService: identityService,
		ExampleService:  exampleService,
	}, nil
}

// Close releases the application's external resources
func (a *App) Close() error {
	var errs []error
	if a.Storage != nil {
		errs = append(errs, a.Storage.Close())
	}
	if a.RedisClient != nil {
		errs = append(errs, a.RedisClient.Close())
	}
	return errors.Join(errs...)
}

func newStorage(cfg Config) (storage.PlayerStore, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		store, err := postgres.New(*cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	if cfg.RateLimitBackend != BackendRedis && cfg.CacheBackend != BackendRedis {
		return nil, nil
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("RedisURL required when a backend is redis")
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

func newLimiter(cfg Config, client *redis.Client, clk clock.Clock) (ratelimit.Limiter, error) {
	switch backend(cfg.RateLimitBackend) {
	case BackendMemory:
		return ratelimitmemory.New(ratelimit.DefaultConfig(), clk), nil
	case BackendRedis:
		return ratelimitredis.New(client, ratelimit.DefaultConfig(), clk), nil
	default:
		return nil, errors.New("invalid RateLimitBackend: must be 'memory' or 'redis'")
	}
}

func newCache(cfg Config, client *redis.Client) (cache.Cache, error) {
	switch backend(cfg.CacheBackend) {
	case BackendMemory:
		return cachememory.New(), nil
	case BackendRedis:
		return cacheredis.New(client), nil
	default:
		return nil, errors.New("invalid CacheBackend: must be 'memory' or 'redis'")
	}
}

func backend(name string) string {
	if name == "" {
		return BackendMemory
	}
	return name
}
