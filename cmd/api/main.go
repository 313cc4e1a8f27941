package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"weekly-checklist/config"
	_ "weekly-checklist/docs" // Swagger docs
	"weekly-checklist/internal/checklist/repository"
	"weekly-checklist/internal/checklist/repository/cache"
	"weekly-checklist/internal/checklist/repository/filestore"
	"weekly-checklist/internal/checklist/repository/sqlite"
	"weekly-checklist/internal/checklist/repository/watcher"
	"weekly-checklist/internal/checklist/usecase"
	"weekly-checklist/internal/httpserver"
	"weekly-checklist/internal/middleware"
	"weekly-checklist/internal/pages"
	"weekly-checklist/internal/render"
	"weekly-checklist/pkg/datemath"
	"weekly-checklist/pkg/log"
)

// @title       Weekly Checklist API
// @description Weekly checklists and curated links rendered as plain HTML for legacy mobile browsers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting weekly checklist server...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Calendar
	calendar, err := datemath.NewCalendar(cfg.Calendar.Timezone)
	if err != nil {
		return err
	}

	// 4. Storage: disk store, warmed cache, optional watcher
	store, closeStore, err := openStore(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	checklistCache, err := cache.New(store, cfg.Storage.CacheSize, logger)
	if err != nil {
		return err
	}
	if _, err := checklistCache.Warm(ctx); err != nil {
		logger.Warnf(ctx, "Cache warm-up failed, continuing with an empty cache: %v", err)
	}

	var dirWatcher *watcher.Watcher
	if cfg.Storage.Watch && cfg.Storage.Driver == config.StorageDriverFile {
		dirWatcher, err = watcher.New(cfg.Storage.DataDir, checklistCache, logger)
		if err != nil {
			logger.Warnf(ctx, "File watching disabled: %v", err)
			dirWatcher = nil
		}
	}

	// 5. Checklist UseCase
	checklistUC := usecase.New(store, checklistCache, calendar, logger)

	// 6. Rendering
	renderer, err := render.New()
	if err != nil {
		return err
	}
	links, err := pages.LoadLinks(cfg.Navigator.LinksFile)
	if err != nil {
		return err
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		ChecklistUC:     checklistUC,
		Renderer:        renderer,
		Calendar:        calendar,
		Links:           links,
		Middleware: middleware.Config{
			MaxBodyBytes:    cfg.Import.MaxBodyBytes,
			RateLimitPerMin: cfg.Import.RateLimitPerMin,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 8. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	if dirWatcher != nil {
		g.Go(func() error { return dirWatcher.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// openStore builds the Repository selected by storage.driver.
func openStore(cfg config.StorageConfig, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath, l)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		l.Infof(context.Background(), "SQLite database: %s", cfg.SQLitePath)
		return sqlite.New(db, l), func() { db.Close() }, nil
	default:
		l.Infof(context.Background(), "Data directory: %s", cfg.DataDir)
		return filestore.New(cfg.DataDir, l), func() {}, nil
	}
}
