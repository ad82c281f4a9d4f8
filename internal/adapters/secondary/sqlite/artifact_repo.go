package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

type artifactRepo struct {
	db *sql.DB
}

func NewArtifactRepository(store *Store) ports.ArtifactRepository {
	return &artifactRepo{db: store.db}
}

func (r *artifactRepo) Create(ctx context.Context, artifact *domain.ArtifactRecord) error {
	videoIDs, err := json.Marshal(artifact.VideoIDs)
	if err != nil {
		return fmt.Errorf("marshal video ids: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO artifacts
			(id, file_name, number_of_pages, generated_at, download_link, video_ids)
		VALUES (?, ?, ?, ?, ?, ?)`,
		artifact.ID.String(), artifact.FileName, artifact.NumberOfPages,
		artifact.GeneratedAt.UTC().Format(time.RFC3339Nano),
		artifact.DownloadLink, string(videoIDs),
	)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) List(ctx context.Context) ([]*domain.ArtifactRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, file_name, number_of_pages, generated_at, download_link, video_ids
		FROM artifacts ORDER BY generated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.ArtifactRecord
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact rows: %w", err)
	}
	return artifacts, nil
}

func (r *artifactRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.ArtifactRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM artifacts WHERE id = ?
		RETURNING id, file_name, number_of_pages, generated_at, download_link, video_ids`,
		id.String())

	a, err := scanArtifact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("delete artifact: %w", err)
	}
	return a, nil
}

func scanArtifact(row rowScanner) (*domain.ArtifactRecord, error) {
	a := &domain.ArtifactRecord{}
	var id, generatedAt, videoIDs string

	err := row.Scan(&id, &a.FileName, &a.NumberOfPages, &generatedAt, &a.DownloadLink, &videoIDs)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse artifact id: %w", err)
	}
	a.ID = parsed

	ts, err := time.Parse(time.RFC3339Nano, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse generated_at: %w", err)
	}
	a.GeneratedAt = ts

	if err := json.Unmarshal([]byte(videoIDs), &a.VideoIDs); err != nil {
		return nil, fmt.Errorf("unmarshal video ids: %w", err)
	}
	return a, nil
}
