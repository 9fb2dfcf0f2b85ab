package handlers

import (
	"net/http"
	"strings"

	"github.com/hoanvu/gophim/internal/controllers"
	"github.com/hoanvu/gophim/internal/resolver"
	"github.com/hoanvu/gophim/internal/utils"
	"github.com/sirupsen/logrus"
)

// WatchHandler serves the watch view: movie detail, server groups, and
// the playback selection for the requested episode
type WatchHandler struct {
	watch     *controllers.WatchController
	imageHost string
	logger    *logrus.Logger
}

// NewWatchHandler creates a new watch handler
func NewWatchHandler(watch *controllers.WatchController, imageHost string, logger *logrus.Logger) *WatchHandler {
	return &WatchHandler{
		watch:     watch,
		imageHost: imageHost,
		logger:    logger,
	}
}

// episodeToken reads the requested episode from the URL. "tap" is read
// first, "ep" is the fallback spelling; both absent means the default.
func episodeToken(r *http.Request) string {
	q := r.URL.Query()
	if tap := q.Get("tap"); tap != "" {
		return tap
	}
	if ep := q.Get("ep"); ep != "" {
		return ep
	}
	return resolver.DefaultToken
}

// ServeHTTP handles GET /api/watch/{slug}?tap=|ep=&server=&no_embed=
func (h *WatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/watch/")
	if slug == "" || strings.Contains(slug, "/") {
		writeError(w, http.StatusBadRequest, "movie slug is required")
		return
	}

	q := r.URL.Query()
	noEmbed := q.Get("no_embed") == "1" || q.Get("no_embed") == "true"

	result, err := h.watch.Watch(r.Context(), slug, episodeToken(r), q.Get("server"), noEmbed)
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("Watch request failed")
		writeError(w, http.StatusBadGateway, "failed to load movie")
		return
	}

	result.Movie.PosterURL = utils.FormatImageURL(result.Movie.PosterURL, h.imageHost)
	result.Movie.ThumbURL = utils.FormatImageURL(result.Movie.ThumbURL, h.imageHost)

	writeJSON(w, http.StatusOK, result)
}
