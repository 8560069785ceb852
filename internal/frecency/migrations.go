package frecency

import (
	"fmt"
	"log"
)

// migration is a single schema migration step.
type migration struct {
	version int
	name    string
	up      func() error
}

// runMigrations applies pending schema migrations in order.
func (s *Store) runMigrations() error {
	if err := s.createMigrationsTable(); err != nil {
		return err
	}

	version, err := s.currentMigrationVersion()
	if err != nil {
		return err
	}

	migrations := []migration{
		{version: 1, name: "initial_schema", up: s.migration001InitialSchema},
	}

	for _, m := range migrations {
		if version < m.version {
			log.Printf("Running migration %d: %s", m.version, m.name)
			if err := m.up(); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
			if err := s.setMigrationVersion(m.version, m.name); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Store) createMigrationsTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

func (s *Store) currentMigrationVersion() (int, error) {
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")

	var version int
	if err := row.Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (s *Store) setMigrationVersion(version int, name string) error {
	_, err := s.db.Exec(
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
		version, name,
	)
	return err
}

// migration001InitialSchema creates the launch statistics and search
// analytics tables.
func (s *Store) migration001InitialSchema() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS app_stats (
			item_id TEXT PRIMARY KEY,
			launch_count INTEGER NOT NULL DEFAULT 0,
			last_launch INTEGER,
			created_at INTEGER
		)
	`); err != nil {
		return fmt.Errorf("failed to create app_stats table: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_frecency
		ON app_stats(last_launch DESC, launch_count DESC)
	`); err != nil {
		return fmt.Errorf("failed to create frecency index: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			search_id TEXT NOT NULL UNIQUE,
			query_hash TEXT NOT NULL,
			handler TEXT NOT NULL,
			results_count INTEGER NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create search_history table: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_search_history_timestamp
		ON search_history(timestamp DESC)
	`); err != nil {
		return fmt.Errorf("failed to create search_history timestamp index: %w", err)
	}

	return nil
}
