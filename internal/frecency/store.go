/*
Package frecency implements the persistent usage store behind the "frequently
used" ranking.

Launch counts and timestamps are kept in a SQLite database (modernc.org/sqlite,
pure Go) in WAL mode. Scores are derived on every read, never stored. The store
degrades gracefully: if the database cannot be opened or a statement fails,
writes become no-ops and reads return empty results, with a logged warning. UI
callers never see a storage error.
*/
package frecency

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store tracks per-item launch statistics and notifies observers on change.
//
// All mutations are serialized through a mutex on top of single-statement
// upserts, so concurrent RecordLaunch calls for the same item never lose an
// increment.
type Store struct {
	db      *sql.DB
	dbPath  string
	enabled bool

	mu       sync.Mutex
	initOnce sync.Once

	obsMu     sync.Mutex
	observers []func()

	// now is stubbed in tests.
	now func() time.Time
}

// DefaultPath returns the database location under the user's data directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "launchd", "usage.db"), nil
}

// New creates a store backed by the database at dbPath. The database is not
// opened until Init is called.
func New(dbPath string) *Store {
	return &Store{
		dbPath:  dbPath,
		enabled: true,
		now:     time.Now,
	}
}

// Init opens the database, enables WAL mode and runs migrations.
//
// On failure the store disables itself and every subsequent operation becomes
// a safe no-op (graceful degradation). The error is returned for callers that
// want to report it, but ignoring it is always safe.
func (s *Store) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = fmt.Errorf("failed to create data directory: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		// WAL keeps previously committed records intact if a write is
		// interrupted mid-way.
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			initErr = fmt.Errorf("failed to enable WAL mode: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
			log.Printf("Warning: failed to set busy timeout: %v", err)
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Close closes the database connection.
func (s *Store) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.db = nil
	s.enabled = false
	return nil
}

// OnChange registers a callback invoked after every successful mutation
// (RecordLaunch, Clear, ClearAll). There is no payload: observers re-query
// TopItems in full. Callbacks run synchronously outside the store lock.
func (s *Store) OnChange(fn func()) {
	if fn == nil {
		return
	}
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notifyChanged() {
	s.obsMu.Lock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// RecordLaunch records a launch event for itemID, creating the record with
// count=1 on first launch. The upsert is a single statement, so two launches
// in quick succession both land.
//
// Storage failures are logged and swallowed: no notification is emitted and
// the store's prior state is unaffected.
func (s *Store) RecordLaunch(itemID string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	now := s.now().Unix()

	s.mu.Lock()
	_, err := s.db.Exec(`
		INSERT INTO app_stats (item_id, launch_count, last_launch, created_at)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			launch_count = launch_count + 1,
			last_launch = excluded.last_launch
	`, itemID, now, now)
	s.mu.Unlock()

	if err != nil {
		log.Printf("Warning: failed to record launch for %s: %v", itemID, err)
		return nil
	}

	s.notifyChanged()
	return nil
}

// TopItems returns up to limit items with launch_count >= minLaunches, ranked
// by frecency score descending. Ties keep the database order (most recent
// launch first), which is stable across calls.
func (s *Store) TopItems(limit, minLaunches int) []RankedItem {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	rows, err := s.db.Query(`
		SELECT item_id, launch_count, last_launch
		FROM app_stats
		WHERE launch_count >= ?
		ORDER BY last_launch DESC, launch_count DESC
	`, minLaunches)
	s.mu.Unlock()
	if err != nil {
		log.Printf("Warning: failed to query top items: %v", err)
		return nil
	}
	defer rows.Close()

	now := s.now().Unix()

	var items []RankedItem
	for rows.Next() {
		var it RankedItem
		if err := rows.Scan(&it.ItemID, &it.LaunchCount, &it.LastLaunch); err != nil {
			log.Printf("Warning: failed to scan stats row: %v", err)
			continue
		}
		it.Score = Score(it.LaunchCount, it.LastLaunch, now)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Warning: failed to read stats rows: %v", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Stats returns the usage record for one item. The second return value is
// false if the item has never been launched (or the store is degraded).
func (s *Store) Stats(itemID string) (UsageRecord, bool) {
	if !s.enabled || s.db == nil {
		return UsageRecord{}, false
	}

	s.mu.Lock()
	row := s.db.QueryRow(`
		SELECT item_id, launch_count, last_launch, created_at
		FROM app_stats
		WHERE item_id = ?
	`, itemID)
	s.mu.Unlock()

	var rec UsageRecord
	if err := row.Scan(&rec.ItemID, &rec.LaunchCount, &rec.LastLaunch, &rec.CreatedAt); err != nil {
		if err != sql.ErrNoRows {
			log.Printf("Warning: failed to read stats for %s: %v", itemID, err)
		}
		return UsageRecord{}, false
	}
	return rec, true
}

// TotalLaunches returns the sum of all launch counts, 0 for an empty store.
func (s *Store) TotalLaunches() int {
	if !s.enabled || s.db == nil {
		return 0
	}

	s.mu.Lock()
	row := s.db.QueryRow("SELECT COALESCE(SUM(launch_count), 0) FROM app_stats")
	s.mu.Unlock()

	var total int
	if err := row.Scan(&total); err != nil {
		log.Printf("Warning: failed to sum launches: %v", err)
		return 0
	}
	return total
}

// Clear deletes the record for one item and notifies observers.
func (s *Store) Clear(itemID string) error {
	return s.clearWhere("DELETE FROM app_stats WHERE item_id = ?", itemID)
}

// ClearAll deletes every record and notifies observers.
func (s *Store) ClearAll() error {
	return s.clearWhere("DELETE FROM app_stats")
}

func (s *Store) clearWhere(query string, args ...any) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	_, err := s.db.Exec(query, args...)
	s.mu.Unlock()

	if err != nil {
		log.Printf("Warning: failed to clear stats: %v", err)
		return nil
	}

	s.notifyChanged()
	return nil
}

// HashQuery returns the SHA256 hex digest of a query string. Search analytics
// store only the hash, never the query text.
func HashQuery(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
