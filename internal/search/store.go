// Package search holds the active search query, its paginated results,
// and a bounded history of past distinct queries persisted in the
// database. Overlapping searches are serialized by sequence number: a
// response is discarded unless it belongs to the latest issued request,
// so late-arriving responses can never overwrite newer state.
package search

import (
	"context"
	"strings"
	"sync"

	"github.com/hoanvu/gophim/internal/models"
	"github.com/sirupsen/logrus"
)

// Searcher issues search requests against the upstream API
type Searcher interface {
	Search(ctx context.Context, keyword string, page int) (*models.PageResult, error)
}

// Snapshot is a consistent view of the store's current results
type Snapshot struct {
	Query      string         `json:"query"`
	Results    []models.Movie `json:"results"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Failed     bool           `json:"failed"`
}

// Store is the search cache / history store
type Store struct {
	mu     sync.Mutex
	db     *models.Database
	client Searcher
	logger *logrus.Logger
	limit  int

	query      string
	results    []models.Movie
	page       int
	totalPages int
	failed     bool
	seq        uint64

	history []string
}

// NewStore creates a search store backed by the given client and database
func NewStore(db *models.Database, client Searcher, limit int, logger *logrus.Logger) *Store {
	return &Store{
		db:         db,
		client:     client,
		logger:     logger,
		limit:      limit,
		page:       1,
		totalPages: 1,
	}
}

// InitializeHistory loads history from the database at startup. Absent or
// corrupt storage degrades to an empty history, never an error.
func (s *Store) InitializeHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.db.GetSearchHistory(s.limit)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load search history, starting empty")
		s.history = nil
		return
	}
	s.history = history
}

// SetQuery replaces the active query string without fetching
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// Search fetches one result page for the active query. An empty or
// whitespace-only query clears results and resets pagination with no
// network call. On failure prior results stay untouched and the error
// flag is set.
func (s *Store) Search(ctx context.Context, page int) error {
	s.mu.Lock()
	query := s.query
	if strings.TrimSpace(query) == "" {
		s.results = nil
		s.page = 1
		s.totalPages = 1
		s.failed = false
		s.mu.Unlock()
		return nil
	}
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	result, err := s.client.Search(ctx, query, page)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.WithFields(logrus.Fields{
			"query": query,
			"seq":   seq,
		}).Debug("Discarding stale search response")
		return nil
	}

	if err != nil {
		s.failed = true
		return err
	}

	s.results = result.Items
	s.page = result.Pagination.CurrentPage
	if s.page < 1 {
		s.page = page
	}
	s.totalPages = result.Pagination.TotalPages
	if s.totalPages < 1 {
		s.totalPages = 1
	}
	s.failed = false

	if len(result.Items) > 0 && (len(s.history) == 0 || s.history[0] != query) {
		s.pushHistoryLocked(query)
	}

	return nil
}

// ClearResults resets query and results/pagination without touching history
func (s *Store) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.results = nil
	s.page = 1
	s.totalPages = 1
	s.failed = false
}

// ClearHistory deletes the whole persisted history
func (s *Store) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	if err := s.db.ClearSearchHistory(); err != nil {
		s.logger.WithError(err).Warn("Failed to clear persisted search history")
	}
}

// RemoveFromHistory deletes one query from the persisted history
func (s *Store) RemoveFromHistory(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.history[:0]
	for _, h := range s.history {
		if h != query {
			kept = append(kept, h)
		}
	}
	s.history = kept

	if err := s.db.RemoveSearchQuery(query); err != nil {
		s.logger.WithError(err).Warn("Failed to remove persisted search query")
	}
}

// History returns the remembered queries, most recent first
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Results returns a snapshot of the current search state
func (s *Store) Results() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]models.Movie, len(s.results))
	copy(results, s.results)

	return Snapshot{
		Query:      s.query,
		Results:    results,
		Page:       s.page,
		TotalPages: s.totalPages,
		Failed:     s.failed,
	}
}

// pushHistoryLocked prepends a query, deduplicates, caps the list, and
// persists. Storage failures are logged and swallowed.
func (s *Store) pushHistoryLocked(query string) {
	updated := make([]string, 0, len(s.history)+1)
	updated = append(updated, query)
	for _, h := range s.history {
		if h != query {
			updated = append(updated, h)
		}
	}
	if len(updated) > s.limit {
		updated = updated[:s.limit]
	}
	s.history = updated

	if err := s.db.AddSearchQuery(query, s.limit); err != nil {
		s.logger.WithError(err).Warn("Failed to persist search history entry")
	}
}
