package testutil

import (
	"context"
	"image"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"video-link-service/internal/core/domain"
)

// MockVideoRepo is a mock of VideoRepository.
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(ctx context.Context, video *domain.VideoRecord) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id string) (*domain.VideoRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoRecord), args.Error(1)
}

func (m *MockVideoRepo) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VideoRecord), args.Error(1)
}

func (m *MockVideoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) DeleteMany(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

// MockArtifactRepo is a mock of ArtifactRepository.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) Create(ctx context.Context, artifact *domain.ArtifactRecord) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) List(ctx context.Context) ([]*domain.ArtifactRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ArtifactRecord), args.Error(1)
}

func (m *MockArtifactRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.ArtifactRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtifactRecord), args.Error(1)
}

// MockProber is a mock of DurationProber.
type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context, mediaRef string) (int, error) {
	args := m.Called(ctx, mediaRef)
	return args.Int(0), args.Error(1)
}

// MockFileStore is a mock of ArtifactFileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Write(name string, data []byte) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Remove(link string) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockFileStore) Open(link string) (io.ReadCloser, error) {
	args := m.Called(link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// MockImageSource is a mock of ImageSource.
type MockImageSource struct {
	mock.Mock
}

func (m *MockImageSource) Fetch(ctx context.Context, ref string) (image.Image, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(image.Image), args.Error(1)
}
