// Package storage provides SQLite-based persistence for the run journal.
// A journal entry holds what is needed to re-simulate a run: variant, seed,
// grid, interval and the ordered turn log. Scores are not stored; they are
// recomputed by replay.
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

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunRecord is one journaled run.
type RunRecord struct {
	ID           string
	Variant      string
	Player       string
	Seed         int64
	CellSize     int
	Width        int
	Height       int
	TickInterval time.Duration
	FoodAttempts int
	Ticks        uint64
	EndReason    core.EndReason
	Turns        []core.Turn
	CreatedAt    time.Time
}

// NewRunRecord builds a journal entry from a finished run.
func NewRunRecord(id, variant string, cfg core.RuntimeConfig, snap core.Snapshot, turns []core.Turn) RunRecord {
	return RunRecord{
		ID:           id,
		Variant:      variant,
		Player:       cfg.Player,
		Seed:         cfg.Seed,
		CellSize:     cfg.CellSize,
		Width:        cfg.WidthCells,
		Height:       cfg.HeightCells,
		TickInterval: cfg.TickInterval,
		FoodAttempts: cfg.FoodAttempts,
		Ticks:        snap.Tick,
		EndReason:    snap.Reason,
		Turns:        turns,
	}
}

// Config rebuilds the engine config the run was started with.
func (r RunRecord) Config() core.RuntimeConfig {
	return core.RuntimeConfig{
		CellSize:     r.CellSize,
		WidthCells:   r.Width,
		HeightCells:  r.Height,
		TickInterval: r.TickInterval,
		Player:       r.Player,
		Seed:         r.Seed,
		FoodAttempts: r.FoodAttempts,
	}
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Writers wait for the lock instead of failing with SQLITE_BUSY.
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Web and SSH sessions share one store; a single connection serializes them.
	db.SetMaxOpenConns(1)

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
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			player TEXT NOT NULL,
			seed INTEGER NOT NULL,
			cell_size INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			tick_interval_ms INTEGER NOT NULL,
			food_attempts INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL,
			end_reason TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS turns (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			dir INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun writes a run and its turn log in one transaction.
func (s *Store) SaveRun(rec RunRecord) error {
	if rec.ID == "" {
		return errors.New("storage: run ID is required")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs
		 (id, variant, player, seed, cell_size, width, height, tick_interval_ms, food_attempts, ticks, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Variant,
		rec.Player,
		rec.Seed,
		rec.CellSize,
		rec.Width,
		rec.Height,
		rec.TickInterval.Milliseconds(),
		rec.FoodAttempts,
		int64(rec.Ticks),
		string(rec.EndReason),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO turns (run_id, seq, tick, dir) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare turn insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range rec.Turns {
		if _, err := stmt.Exec(rec.ID, i, int64(t.Tick), int(t.Dir)); err != nil {
			return fmt.Errorf("storage: cannot save turn %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

const runColumns = `id, variant, player, seed, cell_size, width, height,
	tick_interval_ms, food_attempts, ticks, end_reason, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var rec RunRecord
	var intervalMS, ticks int64
	var reason string
	var createdAt any

	err := row.Scan(
		&rec.ID,
		&rec.Variant,
		&rec.Player,
		&rec.Seed,
		&rec.CellSize,
		&rec.Width,
		&rec.Height,
		&intervalMS,
		&rec.FoodAttempts,
		&ticks,
		&reason,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}

	rec.TickInterval = time.Duration(intervalMS) * time.Millisecond
	rec.Ticks = uint64(ticks)
	rec.EndReason = core.EndReason(reason)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}

// RunByID retrieves a run with its turn log.
// Returns nil without an error when no such run exists.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	row := s.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	turns, err := s.turns(id)
	if err != nil {
		return nil, err
	}
	rec.Turns = turns
	return &rec, nil
}

func (s *Store) turns(runID string) ([]core.Turn, error) {
	rows, err := s.db.Query("SELECT tick, dir FROM turns WHERE run_id = ? ORDER BY seq", runID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query turns: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var tick int64
		var dir int
		if err := rows.Scan(&tick, &dir); err != nil {
			return nil, fmt.Errorf("storage: cannot scan turn: %w", err)
		}
		turns = append(turns, core.Turn{Tick: uint64(tick), Dir: core.Direction(dir)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return turns, nil
}

// RecentRuns retrieves the most recent runs without their turn logs.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		"SELECT "+runColumns+" FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// ClearRuns deletes every run and turn.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM turns; DELETE FROM runs;"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
