// Package storage provides SQLite-based persistence for completed mission runs.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one completed mission.
type Run struct {
	ID         int64
	Planet     string
	Driver     string        // local user or SSH user name
	Duration   time.Duration // simulated time to completion
	Distance   float64       // odometer at completion, metres
	Objectives int           // objectives completed
	CreatedAt  time.Time
}

// PlanetStats contains aggregated statistics for one planet.
type PlanetStats struct {
	Planet        string
	Runs          int
	Best          time.Duration
	Average       time.Duration
	TotalDistance float64
	LastDriven    time.Time
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			planet TEXT NOT NULL,
			driver TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			objectives INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_planet ON runs(planet);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(planet, duration_ms ASC);
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

// SaveRun records a completed run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Planet == "" {
		return 0, errors.New("storage: run without planet")
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (planet, driver, duration_ms, distance, objectives) VALUES (?, ?, ?, ?, ?)",
		r.Planet, r.Driver, r.Duration.Milliseconds(), r.Distance, r.Objectives,
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

// BestRuns retrieves the fastest N runs for the given planet.
func (s *Store) BestRuns(planet string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, planet, driver, duration_ms, distance, objectives, created_at
		 FROM runs
		 WHERE planet = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		planet, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all planets.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, planet, driver, duration_ms, distance, objectives, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Planet, &r.Driver, &ms, &r.Distance, &r.Objectives, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestTime returns the fastest completion for the given planet.
// ok is false if no runs exist.
func (s *Store) BestTime(planet string) (best time.Duration, ok bool, err error) {
	var ms sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM runs WHERE planet = ?",
		planet,
	).Scan(&ms)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}

	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearRuns deletes all runs for the given planet.
func (s *Store) ClearRuns(planet string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE planet = ?", planet)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllPlanetStats retrieves statistics for every planet that has runs.
func (s *Store) AllPlanetStats() (map[string]*PlanetStats, error) {
	rows, err := s.db.Query(
		`SELECT planet, COUNT(*), MIN(duration_ms), AVG(duration_ms), SUM(distance), MAX(created_at)
		 FROM runs
		 GROUP BY planet`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get planet stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PlanetStats)
	for rows.Next() {
		var ps PlanetStats
		var best int64
		var avg float64
		var lastDriven any
		if err := rows.Scan(&ps.Planet, &ps.Runs, &best, &avg, &ps.TotalDistance, &lastDriven); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		ps.Best = time.Duration(best) * time.Millisecond
		ps.Average = time.Duration(avg * float64(time.Millisecond))
		ps.LastDriven = parseTime(lastDriven)
		stats[ps.Planet] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
