// Package telemetry records fetch diagnostics in a local SQLite
// database. Opt-in; stores counts and durations only, never student
// data.
package telemetry

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Telemetry tracks fetch outcomes for diagnostics.
type Telemetry struct {
	db *sql.DB
}

// FetchEvent is one completed fetch against the store.
type FetchEvent struct {
	Timestamp   time.Time
	TeacherID   string
	Sections    int
	RecordCount int
	Duration    time.Duration
	Failed      bool
}

// New creates a telemetry instance backed by SQLite in the user's
// config directory. When disabled, every method is a no-op.
func New(enabled bool) (*Telemetry, error) {
	if !enabled {
		return &Telemetry{}, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("user config dir: %w", err)
	}
	dbPath := filepath.Join(configDir, "classboard", "telemetry.db")
	return Open(dbPath)
}

// Open creates a telemetry instance at an explicit database path.
func Open(dbPath string) (*Telemetry, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create telemetry directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open telemetry database: %w", err)
	}

	t := &Telemetry{db: db}
	if err := t.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize telemetry schema: %w", err)
	}
	return t, nil
}

func (t *Telemetry) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS fetch_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		teacher_id TEXT,
		sections INTEGER NOT NULL,
		record_count INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fetch_events_timestamp ON fetch_events(timestamp);
	`
	_, err := t.db.Exec(schema)
	return err
}

// RecordFetch stores one fetch event. No-op when telemetry is disabled.
func (t *Telemetry) RecordFetch(ev FetchEvent) error {
	if t.db == nil {
		return nil
	}
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := t.db.Exec(
		`INSERT INTO fetch_events (timestamp, teacher_id, sections, record_count, duration_ms, failed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339), ev.TeacherID, ev.Sections,
		ev.RecordCount, ev.Duration.Milliseconds(), boolToInt(ev.Failed),
	)
	if err != nil {
		return fmt.Errorf("record fetch event: %w", err)
	}
	return nil
}

// FetchCount returns the number of recorded events, for diagnostics.
func (t *Telemetry) FetchCount() (int, error) {
	if t.db == nil {
		return 0, nil
	}
	var n int
	if err := t.db.QueryRow(`SELECT COUNT(*) FROM fetch_events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count fetch events: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (t *Telemetry) Close() error {
	if t.db == nil {
		return nil
	}
	return t.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
