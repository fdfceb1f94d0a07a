package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// runRecord is one row of the run-history table: metadata about a single
// invocation. The model itself is never stored.
type runRecord struct {
	startedAt time.Time
	order     int
	length    int
	sources   []string
	emitted   int
	outcome   string
	duration  time.Duration
}

// setupHistorySchema initializes the run-history table. It is idempotent and
// safe to call on an already-initialized database.
func setupHistorySchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS run_history (
    run_id INTEGER PRIMARY KEY,
    started_at TEXT NOT NULL,
    prefix_length INTEGER NOT NULL,
    output_length INTEGER NOT NULL,
    sources TEXT NOT NULL,
    chars_emitted INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    duration_ms INTEGER NOT NULL
);
`
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schema); err != nil {
		return fmt.Errorf("could not create history schema: %w", err)
	}

	return tx.Commit()
}

// recordRun appends one row to the run-history database. History is an
// observability aid: failures here are logged and never fail the run.
func recordRun(path string, rec runRecord, logger *slog.Logger) {
	db, err := openHistoryDB(path)
	if err != nil {
		logger.Warn("Failed to open run-history database", "path", path, "error", err)
		return
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	if err = setupHistorySchema(db); err != nil {
		logger.Warn("Failed to set up run-history schema", "path", path, "error", err)
		return
	}

	_, err = db.Exec(
		`INSERT INTO run_history (started_at, prefix_length, output_length, sources, chars_emitted, outcome, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?);`,
		rec.startedAt.UTC().Format(time.RFC3339),
		rec.order,
		rec.length,
		strings.Join(rec.sources, " "),
		rec.emitted,
		rec.outcome,
		rec.duration.Milliseconds(),
	)
	if err != nil {
		logger.Warn("Failed to record run history", "path", path, "error", err)
	}
}
