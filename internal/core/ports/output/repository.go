package ports

import (
	"context"

	"github.com/google/uuid"

	"video-link-service/internal/core/domain"
)

// VideoRepository persists VideoRecord entities. Writes are durable before
// the call returns.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.VideoRecord) error
	GetByID(ctx context.Context, id string) (*domain.VideoRecord, error)
	List(ctx context.Context) ([]*domain.VideoRecord, error)
	Delete(ctx context.Context, id string) error
	// DeleteMany removes the given ids and returns how many existed. Absent
	// ids are skipped, not errors.
	DeleteMany(ctx context.Context, ids []string) (int, error)
}

// ArtifactRepository persists ArtifactRecord entities.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *domain.ArtifactRecord) error
	List(ctx context.Context) ([]*domain.ArtifactRecord, error)
	// Delete removes the artifact and returns the deleted record so the
	// caller can cascade over VideoIDs and DownloadLink.
	Delete(ctx context.Context, id uuid.UUID) (*domain.ArtifactRecord, error)
}
