// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to a sqlite or postgres database and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// Every connection to an in-memory sqlite database is a new database
	if dbType == TypeSQLite && strings.Contains(url, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Provinces and territories
CREATE TABLE IF NOT EXISTS province (
    id TEXT PRIMARY KEY,
    name_en TEXT NOT NULL,
    name_fr TEXT NOT NULL,
    flag_url TEXT NOT NULL DEFAULT ''
);

-- Ridings
CREATE TABLE IF NOT EXISTS riding (
    id TEXT PRIMARY KEY,
    name_en TEXT NOT NULL,
    name_fr TEXT NOT NULL,
    province_id TEXT NOT NULL REFERENCES province(id)
);

CREATE INDEX IF NOT EXISTS idx_riding_province_id ON riding(province_id);

-- Party registry
CREATE TABLE IF NOT EXISTS party (
    id TEXT PRIMARY KEY,
    name_en TEXT NOT NULL,
    name_fr TEXT NOT NULL,
    color TEXT NOT NULL
);

-- Result snapshots, oldest first
CREATE TABLE IF NOT EXISTS result_set (
    snapshot_order INTEGER PRIMARY KEY,
    date TEXT NOT NULL UNIQUE
);

-- Results
CREATE TABLE IF NOT EXISTS result (
    snapshot_order INTEGER NOT NULL REFERENCES result_set(snapshot_order) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    riding_id TEXT NOT NULL REFERENCES riding(id),
    candidate TEXT NOT NULL,
    party TEXT NOT NULL,
    current_party TEXT,
    vote_percentage DOUBLE PRECISION NOT NULL,
    majority_percentage DOUBLE PRECISION NOT NULL,
    majority DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (snapshot_order, seq)
);

CREATE INDEX IF NOT EXISTS idx_result_riding_id ON result(riding_id);
`
