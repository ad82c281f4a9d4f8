package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the record tables if they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS videos (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			website_url      TEXT NOT NULL,
			video_url        TEXT NOT NULL,
			time_full_screen INTEGER NOT NULL DEFAULT 0,
			video_duration   INTEGER,
			image            TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS artifacts (
			id              UUID PRIMARY KEY,
			file_name       TEXT NOT NULL,
			number_of_pages INTEGER NOT NULL,
			generated_at    TIMESTAMPTZ NOT NULL,
			download_link   TEXT NOT NULL,
			video_ids       TEXT[] NOT NULL DEFAULT '{}'
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
