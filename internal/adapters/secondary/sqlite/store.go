// Package sqlite backs the record store with an embedded database for
// single-host deployments where running PostgreSQL is not worth it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle shared by the record repositories.
type Store struct {
	db *sql.DB
}

// Open initializes or connects to the database and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS videos (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			website_url      TEXT NOT NULL,
			video_url        TEXT NOT NULL,
			time_full_screen INTEGER NOT NULL DEFAULT 0,
			video_duration   INTEGER,
			image            TEXT NOT NULL DEFAULT '',
			created_at       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS artifacts (
			id              TEXT PRIMARY KEY,
			file_name       TEXT NOT NULL,
			number_of_pages INTEGER NOT NULL,
			generated_at    TEXT NOT NULL,
			download_link   TEXT NOT NULL,
			video_ids       TEXT NOT NULL DEFAULT '[]'
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
