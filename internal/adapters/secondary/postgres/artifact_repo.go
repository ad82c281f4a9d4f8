package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

type artifactRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) ports.ArtifactRepository {
	return &artifactRepo{pool: pool}
}

func (r *artifactRepo) Create(ctx context.Context, artifact *domain.ArtifactRecord) error {
	query := `
		INSERT INTO artifacts
			(id, file_name, number_of_pages, generated_at, download_link, video_ids)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.pool.Exec(ctx, query,
		artifact.ID, artifact.FileName, artifact.NumberOfPages,
		artifact.GeneratedAt, artifact.DownloadLink, artifact.VideoIDs,
	)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) List(ctx context.Context) ([]*domain.ArtifactRecord, error) {
	query := `
		SELECT id, file_name, number_of_pages, generated_at, download_link, video_ids
		FROM artifacts
		ORDER BY generated_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.ArtifactRecord
	for rows.Next() {
		a := &domain.ArtifactRecord{}
		if err := rows.Scan(&a.ID, &a.FileName, &a.NumberOfPages, &a.GeneratedAt, &a.DownloadLink, &a.VideoIDs); err != nil {
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
	query := `
		DELETE FROM artifacts
		WHERE id = $1
		RETURNING id, file_name, number_of_pages, generated_at, download_link, video_ids
	`
	a := &domain.ArtifactRecord{}
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.FileName, &a.NumberOfPages, &a.GeneratedAt, &a.DownloadLink, &a.VideoIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("delete artifact: %w", err)
	}
	return a, nil
}
