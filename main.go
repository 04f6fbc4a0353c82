package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shoppinglist/shopping-list/internal/config"
	"github.com/shoppinglist/shopping-list/internal/database"
	"github.com/shoppinglist/shopping-list/internal/item/repository"
	"github.com/shoppinglist/shopping-list/internal/item/service"
	"github.com/shoppinglist/shopping-list/internal/server"
	"github.com/shoppinglist/shopping-list/pkg/logger"
	"github.com/shoppinglist/shopping-list/pkg/metrics"
)

func main() {
	// LOG_LEVEL is read again from config below; this covers config errors
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Debugf("log level=%s", logger.LevelString())
	logger.Infof("config loaded: env=%s store=%s redis=%v rate_limit=%v", cfg.Server.Environment, cfg.Store, cfg.Redis.Addr() != "", cfg.RateLimit.Enabled)

	ctx := context.Background()

	// the store must be reachable before the listener is bound
	var items service.Service
	switch cfg.Store {
	case config.StoreMemory:
		logger.Warnf("using in-memory item store; data is lost on exit")
		items = service.NewMemoryService()
	default:
		client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
		if err != nil {
			logger.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
		items = service.NewMongoService(client.Database(cfg.MongoDB.Database).Collection(repository.CollectionName))
	}

	var rdb *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v; rate limiter stays in memory", addr, err)
			_ = rdb.Close()
			rdb = nil
		} else {
			defer rdb.Close()
			logger.Infof("connected to Redis at %s", addr)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := server.New(cfg, server.Deps{Items: items, Redis: rdb})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Infof("received %s, shutting down", sig)
	case err := <-errCh:
		logger.Errorf("server failed: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
	logger.Infof("server stopped")
}
