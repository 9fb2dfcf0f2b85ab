package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// Database wraps the bolthold store
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// Search history operations

// AddSearchQuery records a query as the most recent history entry. Any
// previous entry for the same query is removed first so the history stays
// deduplicated, then the history is trimmed to limit entries.
func (db *Database) AddSearchQuery(query string, limit int) error {
	if err := db.store.DeleteMatching(&SearchEntry{}, bolthold.Where("Query").Eq(query)); err != nil {
		return fmt.Errorf("failed to deduplicate history: %w", err)
	}

	entry := &SearchEntry{
		Query:     query,
		CreatedAt: time.Now(),
	}
	if err := db.store.Insert(bolthold.NextSequence(), entry); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return db.trimSearchHistory(limit)
}

// GetSearchHistory retrieves up to limit past queries, most recent first
func (db *Database) GetSearchHistory(limit int) ([]string, error) {
	entries, err := db.allEntries()
	if err != nil {
		return nil, err
	}

	queries := make([]string, 0, len(entries))
	for _, entry := range entries {
		if limit > 0 && len(queries) >= limit {
			break
		}
		queries = append(queries, entry.Query)
	}
	return queries, nil
}

// RemoveSearchQuery deletes all history entries for a query
func (db *Database) RemoveSearchQuery(query string) error {
	return db.store.DeleteMatching(&SearchEntry{}, bolthold.Where("Query").Eq(query))
}

// ClearSearchHistory deletes the entire search history
func (db *Database) ClearSearchHistory() error {
	return db.store.DeleteMatching(&SearchEntry{}, nil)
}

// CountSearchHistory returns the number of stored history entries
func (db *Database) CountSearchHistory() (int, error) {
	entries, err := db.allEntries()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// allEntries returns every history entry sorted most recent first.
// Insert uses NextSequence, so IDs are monotonic.
func (db *Database) allEntries() ([]*SearchEntry, error) {
	var entries []*SearchEntry
	if err := db.store.Find(&entries, nil); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

// trimSearchHistory drops the oldest entries beyond limit
func (db *Database) trimSearchHistory(limit int) error {
	if limit <= 0 {
		return nil
	}

	entries, err := db.allEntries()
	if err != nil {
		return err
	}

	if len(entries) <= limit {
		return nil
	}

	for _, entry := range entries[limit:] {
		if err := db.store.Delete(entry.ID, &SearchEntry{}); err != nil {
			return err
		}
	}
	return nil
}
