package frecency

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// RecordSearch stores an analytics row for one routed query. Only a hash of
// the query text is persisted. Failures degrade like every other write.
func (s *Store) RecordSearch(query, handler string, resultCount int) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	_, err := s.db.Exec(`
		INSERT INTO search_history (search_id, query_hash, handler, results_count, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), HashQuery(query), handler, resultCount,
		s.now().UTC().Format(time.RFC3339))
	s.mu.Unlock()

	if err != nil {
		log.Printf("Warning: failed to record search: %v", err)
	}
	return nil
}

// SearchCount returns the number of recorded searches.
func (s *Store) SearchCount() int {
	if !s.enabled || s.db == nil {
		return 0
	}

	s.mu.Lock()
	row := s.db.QueryRow("SELECT COUNT(*) FROM search_history")
	s.mu.Unlock()

	var count int
	if err := row.Scan(&count); err != nil {
		log.Printf("Warning: failed to count searches: %v", err)
		return 0
	}
	return count
}
