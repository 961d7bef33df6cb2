// Package storage provides the session leaderboard.
//
// Runs are kept in an in-memory SQLite database (pure-Go modernc.org/sqlite,
// no CGO). Nothing is written to disk: the leaderboard lives exactly as long
// as the process and is shared by every game the process hosts.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// Store manages the leaderboard database.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID        int64
	Player    string
	Score     int
	Ticks     uint64
	Cause     string // Why the run ended: "wall", "self" or "exhausted"
	CreatedAt time.Time
}

// Open creates an empty in-memory leaderboard.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is its own database, so pin the pool to
	// one connection to keep a single shared leaderboard.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, created_at ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the leaderboard.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished game and returns its ID.
// A zero CreatedAt is replaced with the current time.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (player, score, ticks, cause, created_at) VALUES (?, ?, ?, ?, ?)",
		run.Player, run.Score, int64(run.Ticks), run.Cause, run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs, highest score first.
// Equal scores keep the order they were set in.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, ticks, cause, created_at
		 FROM runs
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks, createdAt int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &ticks, &r.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the best score so far, or 0 when no run has finished.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
