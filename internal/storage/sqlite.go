// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded simulation run.
type RunEntry struct {
	ID        int64
	RunID     string // UUID assigned by the simulator
	BoardID   string
	Strategy  string
	Outcome   string // "arrived", "exhausted", "no_path", "blocked", "timeout", "error"
	Steps     int
	Expanded  int
	CreatedAt time.Time
}

// StrategyStats contains aggregated results of one strategy on one board.
type StrategyStats struct {
	Strategy  string
	Runs      int
	Arrivals  int
	BestSteps int // 0 when the strategy never arrived
	AvgSteps  float64
	LastRun   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			board_id TEXT NOT NULL,
			strategy TEXT NOT NULL,
			outcome TEXT NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_board_id ON runs(board_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(board_id, strategy, outcome, steps);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.RunID == "" {
		return 0, errors.New("storage: run has no run ID")
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, board_id, strategy, outcome, steps, expanded)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.BoardID, run.Strategy, run.Outcome, run.Steps, run.Expanded,
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

const runColumns = `id, run_id, board_id, strategy, outcome, steps, expanded, created_at`

// RecentRuns retrieves the most recent runs across all boards.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// RunsForBoard retrieves the most recent runs on the given board.
func (s *Store) RunsForBoard(boardID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE board_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		boardID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board runs: %w", err)
	}
	return collectRuns(rows)
}

// RunByID retrieves a run by its run ID.
// Returns nil if no such run exists.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// BestRun returns the arrived run with the fewest steps for a board and strategy.
// Earlier runs win ties. Returns nil if the strategy never arrived.
func (s *Store) BestRun(boardID, strategy string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE board_id = ? AND strategy = ? AND outcome = 'arrived'
		 ORDER BY steps ASC, id ASC
		 LIMIT 1`,
		boardID, strategy,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return &run, nil
}

// ClearRuns deletes all runs for the given board.
func (s *Store) ClearRuns(boardID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// BoardStats retrieves per-strategy statistics for a board, ordered by strategy.
func (s *Store) BoardStats(boardID string) ([]StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT strategy,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'arrived' THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'arrived' THEN steps END), 0),
		        COALESCE(AVG(CASE WHEN outcome = 'arrived' THEN steps END), 0),
		        MAX(created_at)
		 FROM runs
		 WHERE board_id = ?
		 GROUP BY strategy
		 ORDER BY strategy`,
		boardID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	defer rows.Close()

	var stats []StrategyStats
	for rows.Next() {
		var st StrategyStats
		var lastRun any
		if err := rows.Scan(&st.Strategy, &st.Runs, &st.Arrivals, &st.BestSteps, &st.AvgSteps, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := sc.Scan(&e.ID, &e.RunID, &e.BoardID, &e.Strategy, &e.Outcome, &e.Steps, &e.Expanded, &createdAt); err != nil {
		return RunEntry{}, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func collectRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the datetime as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
