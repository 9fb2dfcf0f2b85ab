package handlers

import (
	"net/http"
	"time"

	"github.com/hoanvu/gophim/internal/controllers"
	"github.com/hoanvu/gophim/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusHandler handles status requests
type StatusHandler struct {
	db      *models.Database
	catalog *controllers.CatalogController
	started time.Time
	logger  *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db *models.Database, catalog *controllers.CatalogController, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		db:      db,
		catalog: catalog,
		started: time.Now(),
		logger:  logger,
	}
}

// StatusResponse represents the status response
type StatusResponse struct {
	HistoryEntries int    `json:"history_entries"`
	CachedEntries  int    `json:"cached_entries"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	Version        string `json:"version"`
}

// ServeHTTP handles the status endpoint
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	historyCount, err := h.db.CountSearchHistory()
	if err != nil {
		h.logger.WithError(err).Error("Failed to count search history")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		HistoryEntries: historyCount,
		CachedEntries:  h.catalog.CacheSize(),
		UptimeSeconds:  int64(time.Since(h.started).Seconds()),
		Version:        "1.0",
	})
}
