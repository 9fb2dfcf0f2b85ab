package handlers

import (
	"net/http"

	"github.com/hoanvu/gophim/internal/search"
	"github.com/sirupsen/logrus"
)

// SearchHandler serves search and search-history endpoints
type SearchHandler struct {
	store  *search.Store
	logger *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(store *search.Store, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{store: store, logger: logger}
}

// Search handles GET /api/search?q=&page=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.store.SetQuery(r.URL.Query().Get("q"))
	if err := h.store.Search(r.Context(), pageParam(r)); err != nil {
		h.logger.WithError(err).Error("Search failed")
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, h.store.Results())
}

// History handles GET and DELETE on /api/search/history. DELETE with a
// ?q= parameter removes one entry, without it the whole history.
func (h *SearchHandler) History(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string][]string{
			"history": h.store.History(),
		})
	case http.MethodDelete:
		if q := r.URL.Query().Get("q"); q != "" {
			h.store.RemoveFromHistory(q)
		} else {
			h.store.ClearHistory()
		}
		writeJSON(w, http.StatusOK, map[string][]string{
			"history": h.store.History(),
		})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Suggest handles GET /api/search/suggest?q=
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	suggestions := h.store.Suggest(r.URL.Query().Get("q"), 5)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"suggestions": suggestions,
	})
}
