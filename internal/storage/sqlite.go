// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// Result is the record of one finished game. Only the outcome is kept,
// there is no score.
type Result struct {
	ID        int64
	SessionID string // uuid of the game
	Frontend  string // "console", "tui" or "ssh"
	Outcome   string // "won" or "lost"
	Cause     string // "wall", "body" or "board_full"
	Turns     int
	CreatedAt time.Time
}

// Record summarizes all finished games.
type Record struct {
	Played     int
	Won        int
	Lost       int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// The path is used as given; callers resolve ~ first (config.Config.DBPath).
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			frontend TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
			cause TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (session_id, frontend, outcome, cause, turns)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, r.Frontend, r.Outcome, r.Cause, r.Turns,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent finished games, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, frontend, outcome, cause, turns, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Frontend, &r.Outcome, &r.Cause, &r.Turns, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultBySession retrieves a game by its session ID.
// Returns nil without error when no such game exists.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	var r Result
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, session_id, frontend, outcome, cause, turns, created_at
		 FROM results
		 WHERE session_id = ?`,
		sessionID,
	).Scan(&r.ID, &r.SessionID, &r.Frontend, &r.Outcome, &r.Cause, &r.Turns, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// Record returns the overall win/loss record.
func (s *Store) Record() (Record, error) {
	var rec Record
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM results`,
	).Scan(&rec.Played, &rec.Won, &rec.Lost, &lastPlayed)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot get record: %w", err)
	}

	rec.LastPlayed = parseTime(lastPlayed)
	return rec, nil
}

// ClearResults deletes the whole history.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
