package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

type videoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepository(pool *pgxpool.Pool) ports.VideoRepository {
	return &videoRepo{pool: pool}
}

func (r *videoRepo) Create(ctx context.Context, video *domain.VideoRecord) error {
	query := `
		INSERT INTO videos
			(id, name, website_url, video_url, time_full_screen, video_duration, image, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		video.ID, video.Name, video.WebsiteURL, video.VideoURL,
		video.TimeFullScreen, video.VideoDuration, video.Image, video.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *videoRepo) GetByID(ctx context.Context, id string) (*domain.VideoRecord, error) {
	query := `
		SELECT id, name, website_url, video_url, time_full_screen, video_duration, image, created_at
		FROM videos
		WHERE id = $1
	`
	v, err := scanVideo(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, fmt.Errorf("get video by id: %w", err)
	}
	return v, nil
}

func (r *videoRepo) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	query := `
		SELECT id, name, website_url, video_url, time_full_screen, video_duration, image, created_at
		FROM videos
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []*domain.VideoRecord
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video row: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video rows: %w", err)
	}
	return videos, nil
}

func (r *videoRepo) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepo) DeleteMany(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete videos: %w", err)
	}
	return int(result.RowsAffected()), nil
}

func scanVideo(row pgx.Row) (*domain.VideoRecord, error) {
	v := &domain.VideoRecord{}
	err := row.Scan(
		&v.ID, &v.Name, &v.WebsiteURL, &v.VideoURL,
		&v.TimeFullScreen, &v.VideoDuration, &v.Image, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}
