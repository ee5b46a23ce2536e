// Package storage provides SQLite-based history of generation runs.
// Only the inputs and summary of a run are stored; a layout is reproduced
// by regenerating it from its seed.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/mapgen"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one recorded generation run.
type RunRecord struct {
	ID            string
	Archetype     string
	Strategy      string
	Width         int
	Height        int
	Walkers       int
	Lifetime      int
	Seed          uint64
	Hallways      int
	Intersections int
	Interiors     int
	Walls         int
	CreatedAt     time.Time
}

// NewRunRecord describes a finished pass of a generator built from cfg.
func NewRunRecord(cfg mapgen.Config, archetype string, res mapgen.Result) RunRecord {
	r := RunRecord{
		Archetype:     archetype,
		Strategy:      res.Strategy,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Seed:          res.Seed,
		Hallways:      res.Stats.Hallways,
		Intersections: res.Stats.Intersections,
		Interiors:     res.Stats.Interiors,
		Walls:         res.Stats.Walls,
	}
	if rw, ok := cfg.Strategy.(layout.RandomWalk); ok {
		r.Walkers = rw.Walkers
		r.Lifetime = rw.Lifetime
	}
	return r
}

// LayoutStrategy rebuilds the carve strategy the run used.
func (r RunRecord) LayoutStrategy() (layout.Strategy, error) {
	return layout.ParseStrategy(r.Strategy, r.Walkers, r.Lifetime)
}

// MapgenConfig rebuilds the generator settings needed to replay the run.
func (r RunRecord) MapgenConfig() (mapgen.Config, error) {
	s, err := r.LayoutStrategy()
	if err != nil {
		return mapgen.Config{}, fmt.Errorf("storage: run %s: %w", r.ID, err)
	}
	return mapgen.Config{
		Width:    r.Width,
		Height:   r.Height,
		Strategy: s,
		Seed:     r.Seed,
	}, nil
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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			archetype TEXT NOT NULL DEFAULT '',
			strategy TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			walkers INTEGER NOT NULL DEFAULT 0,
			lifetime INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL,
			hallways INTEGER NOT NULL DEFAULT 0,
			intersections INTEGER NOT NULL DEFAULT 0,
			interiors INTEGER NOT NULL DEFAULT 0,
			walls INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_archetype ON runs(archetype);
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

// SaveRun records a run, assigning a new ID when r.ID is empty.
// Returns the run ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	// Seeds are stored as their int64 bit pattern
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, archetype, strategy, width, height, walkers, lifetime, seed, hallways, intersections, interiors, walls)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Archetype,
		r.Strategy,
		r.Width,
		r.Height,
		r.Walkers,
		r.Lifetime,
		int64(r.Seed),
		r.Hallways,
		r.Intersections,
		r.Interiors,
		r.Walls,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, archetype, strategy, width, height, walkers, lifetime, seed,
		        hallways, intersections, interiors, walls, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var seed int64
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.Archetype,
		&r.Strategy,
		&r.Width,
		&r.Height,
		&r.Walkers,
		&r.Lifetime,
		&seed,
		&r.Hallways,
		&r.Intersections,
		&r.Interiors,
		&r.Walls,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.Seed = uint64(seed)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// RunByID retrieves a run by its ID. Returns nil if no such run exists.
func (s *Store) RunByID(id string) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// CountRuns returns the number of recorded runs.
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
