// Package store persists the learning state in a single SQLite file:
// four logical tables (concepts, cards, review_records, review_events)
// plus generation_events for the text-generation audit trail. The
// review-event table is append-only; review_records and mastery_states
// are derived state kept consistent with it transactionally.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a keyed lookup matches nothing.
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS concepts (
    id TEXT PRIMARY KEY,
    subject TEXT NOT NULL,
    topic TEXT NOT NULL,
    name TEXT NOT NULL,
    rule_statement TEXT NOT NULL DEFAULT '',
    elements TEXT NOT NULL DEFAULT '[]',
    common_traps TEXT NOT NULL DEFAULT '[]',
    exceptions TEXT NOT NULL DEFAULT '[]',
    policy_rationales TEXT NOT NULL DEFAULT '[]',
    difficulty_seed INTEGER NOT NULL,
    prerequisites TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    concept_id TEXT NOT NULL,
    card_type TEXT NOT NULL,
    subject TEXT NOT NULL,
    topic TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    difficulty INTEGER NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    FOREIGN KEY (concept_id) REFERENCES concepts(id)
);
CREATE INDEX IF NOT EXISTS idx_cards_concept ON cards(concept_id);
CREATE INDEX IF NOT EXISTS idx_cards_subject ON cards(subject);

CREATE TABLE IF NOT EXISTS review_records (
    card_id TEXT PRIMARY KEY,
    repetitions INTEGER NOT NULL,
    interval_days INTEGER NOT NULL,
    ease_factor REAL NOT NULL,
    due_date TEXT NOT NULL,
    last_reviewed_at TEXT NOT NULL,
    lapse_count INTEGER NOT NULL,
    FOREIGN KEY (card_id) REFERENCES cards(id)
);

CREATE TABLE IF NOT EXISTS review_events (
    id TEXT PRIMARY KEY,
    sequence INTEGER NOT NULL UNIQUE,
    card_id TEXT NOT NULL,
    concept_id TEXT NOT NULL,
    subject TEXT NOT NULL,
    topic TEXT NOT NULL,
    quality INTEGER NOT NULL,
    timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_review_events_concept ON review_events(concept_id);
CREATE INDEX IF NOT EXISTS idx_review_events_timestamp ON review_events(timestamp);

CREATE TABLE IF NOT EXISTS mastery_states (
    concept_id TEXT PRIMARY KEY,
    mastery REAL NOT NULL,
    sample_count INTEGER NOT NULL,
    last_updated TEXT NOT NULL,
    FOREIGN KEY (concept_id) REFERENCES concepts(id)
);

CREATE TABLE IF NOT EXISTS generation_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    provider TEXT NOT NULL,
    model TEXT NOT NULL,
    purpose TEXT NOT NULL,
    input_tokens INTEGER NOT NULL,
    output_tokens INTEGER NOT NULL,
    latency_ms INTEGER NOT NULL,
    success INTEGER NOT NULL,
    error_message TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
`

// Store wraps the SQLite database.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a Store connected to the SQLite database at dsn,
// applying the recommended pragmas and creating the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithTx runs fn inside a transaction, committing on nil and rolling
// back on error. The review-submission path uses this to keep the event
// append, scheduler update, and mastery update all-or-nothing.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Reset drops all learner data. Content tables are cleared too; a fresh
// import rebuilds them.
func (s *Store) Reset(ctx context.Context) error {
	tables := []string{
		"review_events", "review_records", "mastery_states",
		"generation_events", "cards", "concepts",
	}
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("clear %s: %w", t, err)
			}
		}
		_, err := tx.ExecContext(ctx, "UPDATE global_sequence SET next_val = 1 WHERE id = 1")
		return err
	})
}

// dbtx is satisfied by both *sql.DB and *sql.Tx so repository methods
// can run standalone or inside a review transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// applyPragmas configures SQLite for single-learner performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BARRISTER_DB environment variable
// 2. $XDG_DATA_HOME/barrister/barrister.db
// 3. ~/.local/share/barrister/barrister.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BARRISTER_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "barrister", "barrister.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
