package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/estevam5s/docgen/internal/api"
	"github.com/estevam5s/docgen/internal/cleanup"
	"github.com/estevam5s/docgen/internal/config"
	"github.com/estevam5s/docgen/internal/session"
	"github.com/estevam5s/docgen/internal/templates"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting docgen",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Session store: Redis when configured, in-process memory otherwise
	var store session.Store
	var sweeper cleanup.Sweeper

	if cfg.Redis.Address != "" {
		redisStore, err := session.NewRedisStore(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Session.TTL)
		if err != nil {
			slog.Error("failed to connect to redis", "address", cfg.Redis.Address, "error", err)
			os.Exit(1)
		}
		store = redisStore
		slog.Info("redis session store connected", "address", cfg.Redis.Address)
	} else {
		memStore := session.NewMemoryStore(cfg.Session.TTL)
		store = memStore
		sweeper = memStore
		slog.Warn("no redis configured, sessions are kept in process memory")
	}
	defer store.Close()

	// Load section catalog overrides
	templateLoader := templates.NewLoader()
	if cfg.Templates.Dir != "" {
		if err := templateLoader.LoadFromDir(cfg.Templates.Dir); err != nil {
			slog.Warn("failed to load catalog overrides", "dir", cfg.Templates.Dir, "error", err)
		}
	}

	// Initialize cleanup worker
	cleaner := cleanup.NewCleaner(cfg.Upload.Dir, cfg.Upload.Retention, cfg.Cleanup.Interval, sweeper)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start cleanup worker
	cleaner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(*cfg, store, templateLoader)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("docgen stopped")
}
