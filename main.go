package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"help-projector/config"
	httpLayer "help-projector/http"
	"help-projector/repository"
	"help-projector/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	projectionRepo := repository.NewProjectionRepositoryMemory()
	cache := newCache(cfg)

	projectionService := service.NewProjectionService(projectionRepo, cache)
	projectionHandler := httpLayer.NewProjectionHandler(projectionService)

	comparisonService := service.NewComparisonService(projectionService)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(rateLimiter, projectionHandler, comparisonHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HELP projector listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("error starting server", "error", err)
		return
	case <-quit:
		slog.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("error during server shutdown", "error", err)
	}

	slog.Info("server exited")
}

// newCache picks Redis when an address is configured and reachable, and the
// in-memory cache otherwise.
func newCache(cfg config.Config) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		redisCache.Close()
		return repository.NewMemoryCache()
	}

	slog.Info("projection cache", "backend", "redis", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return redisCache
}
