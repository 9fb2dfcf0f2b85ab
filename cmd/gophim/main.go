package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hoanvu/gophim/internal/api"
	"github.com/hoanvu/gophim/internal/config"
	"github.com/hoanvu/gophim/internal/controllers"
	"github.com/hoanvu/gophim/internal/models"
	"github.com/hoanvu/gophim/internal/playback"
	"github.com/hoanvu/gophim/internal/scheduler"
	"github.com/hoanvu/gophim/internal/search"
	"github.com/hoanvu/gophim/internal/services/phimapi"
	"github.com/hoanvu/gophim/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting gophim")
	logger.WithField("config_dir", filepath.Dir(cfg.DatabaseFile)).Info("Configuration loaded")

	// 3. Initialize database
	db, err := models.NewDatabase(cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	logger.Info("Database initialized")

	// 4. Initialize upstream client
	client, err := phimapi.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize movie API client: %w", err)
	}
	logger.Info("Movie API client initialized")

	// 5. Initialize playback components
	selector, err := playback.NewSelector(cfg.PlayerBaseURL, cfg.EmbedDenyHosts)
	if err != nil {
		return fmt.Errorf("failed to initialize playback selector: %w", err)
	}
	session := playback.NewSession(playback.NewHTTPEngineFactory(logger), logger)
	defer session.Detach()

	// 6. Initialize controllers and search store
	cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	catalogCtrl := controllers.NewCatalogController(client, cacheTTL, logger)
	watchCtrl := controllers.NewWatchController(client, selector, session, cfg.PlayerBaseURL, logger)
	logger.Info("Controllers initialized")

	store := search.NewStore(db, client, cfg.HistoryLimit, logger)
	store.InitializeHistory()
	logger.Info("Search store initialized")

	// 7. Initialize scheduler
	sched := scheduler.NewScheduler(catalogCtrl, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 8. Initialize HTTP server
	server := api.NewServer(cfg, db, catalogCtrl, watchCtrl, store, logger)

	// Start server in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 9. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("gophim is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("gophim stopped")
	return nil
}
