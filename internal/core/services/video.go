package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

// VideoService covers the single-record paths: create, lookup, list, delete.
type VideoService struct {
	videoRepo ports.VideoRepository
	baseURL   string
}

func NewVideoService(videoRepo ports.VideoRepository, baseURL string) *VideoService {
	return &VideoService{videoRepo: videoRepo, baseURL: strings.TrimRight(baseURL, "/")}
}

// Link builds the shareable landing page URL for a video id.
func (s *VideoService) Link(id string) string {
	return fmt.Sprintf("%s/video/%s", s.baseURL, id)
}

func (s *VideoService) Create(ctx context.Context, video *domain.VideoRecord) (*domain.VideoRecord, string, error) {
	if err := video.Validate(); err != nil {
		return nil, "", err
	}

	id, err := domain.NewVideoID()
	if err != nil {
		return nil, "", fmt.Errorf("generate video id: %w", err)
	}
	video.ID = id
	video.CreatedAt = time.Now()

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, "", err
	}
	return video, s.Link(video.ID), nil
}

func (s *VideoService) Get(ctx context.Context, id string) (*domain.VideoRecord, error) {
	return s.videoRepo.GetByID(ctx, id)
}

func (s *VideoService) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	return s.videoRepo.List(ctx)
}

// Delete removes exactly one video. Artifact VideoIDs referencing it are left
// untouched; the cascade path tolerates the stale reference.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.videoRepo.Delete(ctx, id)
}
