package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/config"
	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/db/memory"
	dbRedis "github.com/kailas-cloud/folio/internal/db/redis"
	"github.com/kailas-cloud/folio/internal/db/sqlite"
	"github.com/kailas-cloud/folio/internal/domain/playlist"
	logpkg "github.com/kailas-cloud/folio/internal/logger"
	"github.com/kailas-cloud/folio/internal/metrics"
	prefrepo "github.com/kailas-cloud/folio/internal/repository/preference"
	recordrepo "github.com/kailas-cloud/folio/internal/repository/record"
	chiTransport "github.com/kailas-cloud/folio/internal/transport/chi"
	feeduc "github.com/kailas-cloud/folio/internal/usecase/feed"
	filteruc "github.com/kailas-cloud/folio/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/folio/internal/usecase/health"
	prefuc "github.com/kailas-cloud/folio/internal/usecase/preference"
	"github.com/kailas-cloud/folio/internal/version"
	"github.com/kailas-cloud/folio/internal/watcher"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting folio server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("catalog", cfg.Content.Catalog),
	)

	store, err := openStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register content metrics explicitly (no init())
	metrics.RegisterContentMetrics()

	// Catalog: initial load must succeed, later reloads keep the last good snapshot.
	catalog := recordrepo.NewStore(nil)
	loader := recordrepo.NewLoader(cfg.Content.Catalog, catalog)
	if err := loader.Reload(ctx); err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.Int("records", catalog.Len()))

	if cfg.Content.Watch {
		w, err := watcher.New(loader.Path(), time.Duration(cfg.Content.DebounceMs)*time.Millisecond, loader, logger)
		if err != nil {
			logger.Fatal("Failed to watch catalog", zap.Error(err))
		}
		go w.Run(ctx)
		logger.Info("Watching catalog for changes")
	}

	// Repositories
	prefRepo := prefrepo.New(store, cfg.Preferences.KeyPrefix, time.Duration(cfg.Preferences.TTLDays)*24*time.Hour)

	// Use case services; the view notifier hands results to the page renderer.
	view := chiTransport.ViewNotifier{}
	filterSvc := filteruc.New(catalog, filteruc.Notifiers{view, filteruc.LogNotifier{}})
	prefSvc := prefuc.New(prefRepo, prefuc.Notifiers{view, prefuc.LogNotifier{}})
	feedSvc := feeduc.New(filterSvc, cfg.Feed.PageSize, cfg.Feed.MaxPageSize)
	healthSvc := healthuc.New(store, catalog)

	server := chiTransport.NewServer(chiTransport.Services{
		Filter:      filterSvc,
		Preferences: prefSvc,
		Feed:        feedSvc,
		Health:      healthSvc,
		Catalog:     catalog,
		Reloader:    loader,
		Playlist:    playlist.Default(),
	}, logger)

	r := chiTransport.NewRouter(server, chiTransport.RouterOptions{
		APIKeys:      cfg.Auth.APIKeys,
		CookieName:   cfg.Preferences.CookieName,
		CookieMaxAge: time.Duration(cfg.Preferences.TTLDays) * 24 * time.Hour,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore creates the durable preference store for the configured driver.
// Redis and Valkey share the rueidis client.
func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case db.DriverMemory:
		return memory.NewStore(), nil
	case db.DriverSQLite:
		return sqlite.NewStore(cfg.Path)
	case db.DriverRedis, db.DriverValkey:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
