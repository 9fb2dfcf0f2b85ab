package models

import "time"

// SearchEntry is one remembered search query. Entries are kept
// most-recent-first, deduplicated, and capped by the history limit.
type SearchEntry struct {
	ID        uint64 `boltholdKey:"ID"`
	Query     string `boltholdIndex:"Query"`
	CreatedAt time.Time
}
