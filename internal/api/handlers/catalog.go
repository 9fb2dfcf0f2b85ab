package handlers

import (
	"net/http"
	"strings"

	"github.com/hoanvu/gophim/internal/controllers"
	"github.com/hoanvu/gophim/internal/models"
	"github.com/hoanvu/gophim/internal/utils"
	"github.com/sirupsen/logrus"
)

// CatalogHandler serves the catalog listing endpoints
type CatalogHandler struct {
	catalog   *controllers.CatalogController
	imageHost string
	logger    *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *controllers.CatalogController, imageHost string, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		imageHost: imageHost,
		logger:    logger,
	}
}

// formatImages normalizes poster/thumb URLs before the page leaves the
// API. Works on a copy so cached pages are never mutated.
func (h *CatalogHandler) formatImages(page *models.PageResult) *models.PageResult {
	out := *page
	out.Items = make([]models.Movie, len(page.Items))
	copy(out.Items, page.Items)
	for i := range out.Items {
		out.Items[i].PosterURL = utils.FormatImageURL(out.Items[i].PosterURL, h.imageHost)
		out.Items[i].ThumbURL = utils.FormatImageURL(out.Items[i].ThumbURL, h.imageHost)
	}
	return &out
}

// Movies handles /api/movies/{kind}?page=
func (h *CatalogHandler) Movies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	kind := strings.TrimPrefix(r.URL.Path, "/api/movies/")
	page := pageParam(r)
	ctx := r.Context()

	var result *models.PageResult
	switch kind {
	case "latest":
		result = h.catalog.Latest(ctx, page)
	case "series":
		result = h.catalog.List(ctx, models.ListSeries, page)
	case "single":
		result = h.catalog.List(ctx, models.ListSingle, page)
	case "animation":
		result = h.catalog.List(ctx, models.ListAnimation, page)
	case "theater":
		result = h.catalog.List(ctx, models.ListTheater, page)
	case "recommended":
		result = h.catalog.Recommended(ctx, page)
	default:
		writeError(w, http.StatusNotFound, "unknown movie list: "+kind)
		return
	}

	writeJSON(w, http.StatusOK, h.formatImages(result))
}

// Genres handles /api/genres
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Genres(r.Context()))
}

// Countries handles /api/countries
func (h *CatalogHandler) Countries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Countries(r.Context()))
}

// Genre handles /api/genre/{slug}?page=
func (h *CatalogHandler) Genre(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/genre/")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "genre slug is required")
		return
	}

	writeJSON(w, http.StatusOK, h.formatImages(h.catalog.ByGenre(r.Context(), slug, pageParam(r))))
}

// Country handles /api/country/{slug}?page=
func (h *CatalogHandler) Country(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/country/")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "country slug is required")
		return
	}

	writeJSON(w, http.StatusOK, h.formatImages(h.catalog.ByCountry(r.Context(), slug, pageParam(r))))
}
