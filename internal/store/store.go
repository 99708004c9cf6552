// Package store persists the project's entity collections in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

const currentVersion = 1

// Store wraps the SQLite database holding all obratrack data.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return Open(":memory:")
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS project (
		id               INTEGER PRIMARY KEY CHECK (id = 1),
		name             TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		hourly_rate_prof REAL NOT NULL DEFAULT 0,
		hourly_rate_serv REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS collaborators (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS budget_items (
		id                   TEXT PRIMARY KEY,
		code                 TEXT NOT NULL,
		description          TEXT NOT NULL,
		unit                 TEXT NOT NULL,
		quantity             REAL NOT NULL DEFAULT 0,
		estimated_value      REAL NOT NULL DEFAULT 0,
		estimated_prof_hours REAL NOT NULL DEFAULT 0,
		estimated_serv_hours REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS daily_logs (
		id              TEXT PRIMARY KEY,
		date            TEXT NOT NULL,
		collaborator_id TEXT NOT NULL,
		budget_item_id  TEXT NOT NULL,
		hours           REAL NOT NULL,
		justification   TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS monthly_plans (
		id                   TEXT PRIMARY KEY,
		month                TEXT NOT NULL,
		budget_item_id       TEXT NOT NULL,
		projected_percentage REAL NOT NULL,
		UNIQUE(budget_item_id, month)
	);

	CREATE TABLE IF NOT EXISTS quantitative_logs (
		id                TEXT PRIMARY KEY,
		month             TEXT NOT NULL,
		budget_item_id    TEXT NOT NULL,
		executed_quantity REAL NOT NULL,
		UNIQUE(budget_item_id, month)
	);

	CREATE TABLE IF NOT EXISTS financial_records (
		id            TEXT PRIMARY KEY,
		month         TEXT NOT NULL UNIQUE,
		hr_hours      REAL NOT NULL DEFAULT 0,
		payroll_cost  REAL NOT NULL DEFAULT 0,
		indirect_cost REAL NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(date);
	CREATE INDEX IF NOT EXISTS idx_daily_logs_item ON daily_logs(budget_item_id);
	CREATE INDEX IF NOT EXISTS idx_plans_month     ON monthly_plans(month);
	`
	_, err := s.db.Exec(ddl)
	return err
}
