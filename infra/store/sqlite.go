// Package store persists generated calendars in a SQLite database so past
// runs stay queryable after the CSV leaves the machine.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/starrtours/pricingcal/core/model"
)

// Config enables and locates the run store.
type Config struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		c.Path = "pricingcal.db"
	}
}

// RunSummary describes one persisted run.
type RunSummary struct {
	RunID       string
	Year        int
	GeneratedAt time.Time
	Rows        int
}

// SQLiteStore persists runs and their calendar rows.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS runs (
        run_id TEXT PRIMARY KEY,
        year INTEGER,
        generated_at INTEGER,
        row_count INTEGER
    );
    CREATE TABLE IF NOT EXISTS calendar_rows (
        run_id TEXT,
        day INTEGER,
        season TEXT,
        weekday TEXT,
        coach_pressure REAL,
        trips_scheduled INTEGER,
        avg_complexity REAL,
        band TEXT,
        reason TEXT,
        PRIMARY KEY(run_id, day)
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// SaveRun stores the run summary and all its rows in one transaction.
func (s *SQLiteStore) SaveRun(ctx context.Context, runID string, year int, generatedAt time.Time, rows []model.CalendarRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, year, generated_at, row_count) VALUES (?, ?, ?, ?)`,
		runID, year, generatedAt.Unix(), len(rows)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO calendar_rows (run_id, day, season, weekday, coach_pressure,
            trips_scheduled, avg_complexity, band, reason)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()
	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, runID, r.Date.Unix(), string(r.Season),
			r.Weekday, r.CoachPressure, r.TripsCount, r.AvgComplexity, r.Band, r.Reason); err != nil {
			return fmt.Errorf("insert row %s: %w", r.Date.Format("2006-01-02"), err)
		}
	}
	return tx.Commit()
}

// Runs returns the persisted run summaries, newest first.
func (s *SQLiteStore) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, year, generated_at, row_count FROM runs ORDER BY generated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var res []RunSummary
	for rows.Next() {
		var r RunSummary
		var ts int64
		if err := rows.Scan(&r.RunID, &r.Year, &ts, &r.Rows); err != nil {
			return nil, err
		}
		r.GeneratedAt = time.Unix(ts, 0).UTC()
		res = append(res, r)
	}
	return res, rows.Err()
}

// BandCounts returns how many days of a run landed in each band.
func (s *SQLiteStore) BandCounts(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT band, COUNT(*) FROM calendar_rows WHERE run_id = ? GROUP BY band`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var band string
		var n int
		if err := rows.Scan(&band, &n); err != nil {
			return nil, err
		}
		counts[band] = n
	}
	return counts, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
