package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS coding_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id       TEXT NOT NULL,
			event_type    TEXT NOT NULL,
			problem_id    TEXT,
			problem_title TEXT,
			platform      TEXT,
			session_id    TEXT,
			language      TEXT,
			source_code   TEXT,
			created_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS analysis_results (
			id                      INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id                 TEXT NOT NULL,
			analysis_date           TEXT NOT NULL,
			period_days             INTEGER NOT NULL,
			total_problems          INTEGER NOT NULL,
			total_runs              INTEGER NOT NULL,
			total_submits           INTEGER NOT NULL,
			unique_languages        INTEGER NOT NULL,
			most_used_language      TEXT,
			problem_categories_json TEXT,
			approach_rating         REAL NOT NULL,
			quality_score           REAL NOT NULL,
			problem_solving_style   TEXT,
			strengths               TEXT,
			weaknesses              TEXT,
			suggestions_json        TEXT,
			ai_model_used           TEXT NOT NULL,
			confidence              REAL NOT NULL,
			created_at              TEXT NOT NULL,
			updated_at              TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_events_user_created ON coding_events(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_type ON coding_events(event_type)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_user ON analysis_results(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_user_date ON analysis_results(user_id, analysis_date)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
