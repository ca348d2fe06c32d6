// Package journal records per-file sync outcomes in a local SQLite database.
//
// The journal is an audit trail, not a source of truth: the remote existence
// check alone decides whether a file uploads, and journal failures never
// abort a run.
package journal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/epsync/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded per-file outcome.
type Entry struct {
	ID         int64
	RunID      string
	Repository string
	Path       string
	Action     string
	Message    string
	CreatedAt  time.Time
}

// Journal appends sync outcomes for one run to the database.
type Journal struct {
	db         *sql.DB
	dbPath     string
	runID      string
	repository string
}

// Open creates or opens the journal database at dbPath and binds it to one
// run. Use ":memory:" for an in-memory database.
func Open(dbPath, runID, repository string) (*Journal, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	// busy_timeout first so later statements wait on locks instead of
	// failing immediately
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}

	return &Journal{
		db:         db,
		dbPath:     dbPath,
		runID:      runID,
		repository: repository,
	}, nil
}

// Record appends one per-file outcome for the bound run.
func (j *Journal) Record(result models.SyncResult) error {
	const query = `
		INSERT INTO sync_entries (run_id, repository, path, action, message)
		VALUES (?, ?, ?, ?, ?)`

	_, err := j.db.Exec(query, j.runID, j.repository, result.File.RelPath, string(result.Action), result.Message)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	return nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	const query = `
		SELECT id, run_id, repository, path, action, message, created_at
		FROM sync_entries
		ORDER BY id DESC
		LIMIT ?`

	rows, err := j.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.Repository, &e.Path, &e.Action, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}

	return entries, nil
}

// Close releases the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}
