package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hoanvu/gophim/internal/api/handlers"
	"github.com/hoanvu/gophim/internal/api/middleware"
	"github.com/hoanvu/gophim/internal/config"
	"github.com/hoanvu/gophim/internal/controllers"
	"github.com/hoanvu/gophim/internal/models"
	"github.com/hoanvu/gophim/internal/search"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	db      *models.Database
	catalog *controllers.CatalogController
	watch   *controllers.WatchController
	store   *search.Store
	logger  *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, db *models.Database, catalog *controllers.CatalogController, watch *controllers.WatchController, store *search.Store, logger *logrus.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: catalog,
		watch:   watch,
		store:   store,
		logger:  logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux, cfg)

	handler := middleware.Metrics(mux)
	handler = middleware.Logging(handler, logger)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux, cfg *config.Config) {
	// Health check
	healthHandler := handlers.NewHealthHandler(s.logger)
	mux.HandleFunc("/health", healthHandler.ServeHTTP)

	// Status endpoint
	statusHandler := handlers.NewStatusHandler(s.db, s.catalog, s.logger)
	mux.HandleFunc("/status", statusHandler.ServeHTTP)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Catalog listings
	catalogHandler := handlers.NewCatalogHandler(s.catalog, cfg.ImageHost, s.logger)
	mux.HandleFunc("/api/movies/", catalogHandler.Movies)
	mux.HandleFunc("/api/genres", catalogHandler.Genres)
	mux.HandleFunc("/api/countries", catalogHandler.Countries)
	mux.HandleFunc("/api/genre/", catalogHandler.Genre)
	mux.HandleFunc("/api/country/", catalogHandler.Country)

	// Search
	searchHandler := handlers.NewSearchHandler(s.store, s.logger)
	mux.HandleFunc("/api/search", searchHandler.Search)
	mux.HandleFunc("/api/search/history", searchHandler.History)
	mux.HandleFunc("/api/search/suggest", searchHandler.Suggest)

	// Watch view
	watchHandler := handlers.NewWatchHandler(s.watch, cfg.ImageHost, s.logger)
	mux.HandleFunc("/api/watch/", watchHandler.ServeHTTP)
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
