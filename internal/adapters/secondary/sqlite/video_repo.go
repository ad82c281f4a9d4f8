package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

type videoRepo struct {
	db *sql.DB
}

func NewVideoRepository(store *Store) ports.VideoRepository {
	return &videoRepo{db: store.db}
}

func (r *videoRepo) Create(ctx context.Context, video *domain.VideoRecord) error {
	var duration sql.NullInt64
	if video.VideoDuration != nil {
		duration = sql.NullInt64{Int64: int64(*video.VideoDuration), Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos
			(id, name, website_url, video_url, time_full_screen, video_duration, image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		video.ID, video.Name, video.WebsiteURL, video.VideoURL,
		video.TimeFullScreen, duration, video.Image,
		video.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *videoRepo) GetByID(ctx context.Context, id string) (*domain.VideoRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, website_url, video_url, time_full_screen, video_duration, image, created_at
		FROM videos WHERE id = ?`, id)

	v, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, fmt.Errorf("get video by id: %w", err)
	}
	return v, nil
}

func (r *videoRepo) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, website_url, video_url, time_full_screen, video_duration, image, created_at
		FROM videos ORDER BY created_at DESC`)
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
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete video rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepo) DeleteMany(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	result, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM videos WHERE id IN (%s)`, placeholders), args...)
	if err != nil {
		return 0, fmt.Errorf("delete videos: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete videos rows affected: %w", err)
	}
	return int(affected), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*domain.VideoRecord, error) {
	v := &domain.VideoRecord{}
	var duration sql.NullInt64
	var createdAt string

	err := row.Scan(&v.ID, &v.Name, &v.WebsiteURL, &v.VideoURL,
		&v.TimeFullScreen, &duration, &v.Image, &createdAt)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		d := int(duration.Int64)
		v.VideoDuration = &d
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	v.CreatedAt = ts
	return v, nil
}
