package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

// LifecycleService enforces the cascade contract between an artifact and the
// videos it produced. The asymmetry is deliberate and isolated here: deleting
// a single video leaves artifact VideoIDs stale, and the cascade below
// tolerates those stale ids.
type LifecycleService struct {
	videoRepo    ports.VideoRepository
	artifactRepo ports.ArtifactRepository
	files        ports.ArtifactFileStore
}

func NewLifecycleService(videoRepo ports.VideoRepository, artifactRepo ports.ArtifactRepository, files ports.ArtifactFileStore) *LifecycleService {
	return &LifecycleService{videoRepo: videoRepo, artifactRepo: artifactRepo, files: files}
}

func (s *LifecycleService) ListArtifacts(ctx context.Context) ([]*domain.ArtifactRecord, error) {
	return s.artifactRepo.List(ctx)
}

// OpenArtifactFile returns the backing file behind a download link for
// serving. The store rejects links escaping the download root.
func (s *LifecycleService) OpenArtifactFile(link string) (io.ReadCloser, error) {
	return s.files.Open(link)
}

// DeleteArtifact removes the artifact record, every video it references, and
// the backing file. Videos already removed independently are skipped; a
// missing backing file is already-cleaned state. A file that exists but
// cannot be removed is reported as an explicit partial failure, never
// silently dropped.
func (s *LifecycleService) DeleteArtifact(ctx context.Context, id uuid.UUID) error {
	artifact, err := s.artifactRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.videoRepo.DeleteMany(ctx, artifact.VideoIDs)
	if err != nil {
		return fmt.Errorf("cascade delete videos for artifact %s: %w", id, err)
	}
	if deleted < len(artifact.VideoIDs) {
		log.WithFields(log.Fields{
			"artifactId": id,
			"referenced": len(artifact.VideoIDs),
			"deleted":    deleted,
		}).Info("some referenced videos were already removed")
	}

	if err := s.files.Remove(artifact.DownloadLink); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFileRemoval, err)
	}
	return nil
}
