package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wortle/wortle-server/internal/api"
	"github.com/wortle/wortle-server/internal/config"
	"github.com/wortle/wortle-server/internal/factory"
	"github.com/wortle/wortle-server/internal/storage/postgres"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from the environment config
	factoryCfg := factory.Config{
		Logger:           logger,
		StorageType:      cfg.StorageType,
		RateLimitBackend: cfg.RateLimitBackend,
		CacheBackend:     cfg.CacheBackend,
		RedisURL:         cfg.RedisURL,
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
	}

	if cfg.StorageType == factory.StorageTypePostgres {
		pgCfg := postgres.DefaultConfig()
		pgCfg.Host = cfg.DBHost
		pgCfg.Port = cfg.DBPort
		pgCfg.User = cfg.DBUser
		pgCfg.Password = cfg.DBPassword
		pgCfg.Database = cfg.DBName
		factoryCfg.PostgresConfig = &pgCfg
	}

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set; example generation will answer with a configuration error")
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		IdentityService: app.IdentityService,
		ExampleService:  app.ExampleService,
		CORSOrigin:      cfg.CORSOrigin,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
