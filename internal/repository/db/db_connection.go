package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file, ensures tables exist and seeds the
// singleton state row.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One connection: state + log writes of a transition share a transaction
	// and SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaVentState = `
CREATE TABLE IF NOT EXISTS vent_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    vent TEXT NOT NULL CHECK (vent IN ('OPEN', 'CLOSE')),
    rain BOOLEAN NOT NULL DEFAULT 0,
    smoke BOOLEAN NOT NULL DEFAULT 0,
    last_hazard_cause TEXT,
    last_hazard_at TIMESTAMP,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaReadings = `
CREATE TABLE IF NOT EXISTS readings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded_at TIMESTAMP NOT NULL,
    temp_c REAL NOT NULL,
    humidity REAL NOT NULL
);
`

const schemaControlLog = `
CREATE TABLE IF NOT EXISTS control_log (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    actor TEXT NOT NULL,
    command TEXT NOT NULL,
    cause TEXT
);
`

const schemaHazardLog = `
CREATE TABLE IF NOT EXISTS hazard_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL CHECK (kind IN ('rain', 'smoke')),
    value BOOLEAN NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_hazard_log_kind ON hazard_log (kind, id);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

// The vent starts closed; each hazard history gets one "off" sample so charts
// have a starting point.
const seedDefaults = `
INSERT OR IGNORE INTO vent_state (id, vent, rain, smoke, updated_at)
VALUES (1, 'CLOSE', 0, 0, CURRENT_TIMESTAMP);
INSERT INTO hazard_log (kind, value, recorded_at)
SELECT 'rain', 0, CURRENT_TIMESTAMP WHERE NOT EXISTS (SELECT 1 FROM hazard_log WHERE kind = 'rain');
INSERT INTO hazard_log (kind, value, recorded_at)
SELECT 'smoke', 0, CURRENT_TIMESTAMP WHERE NOT EXISTS (SELECT 1 FROM hazard_log WHERE kind = 'smoke');
`

// EnsureSchema applies all schema statements and seeds in one transaction.
func EnsureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaVentState,
		schemaReadings,
		schemaControlLog,
		schemaHazardLog,
		schemaUsers,
		seedDefaults,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
