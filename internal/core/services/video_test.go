package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-link-service/internal/core/domain"
	"video-link-service/internal/testutil"
)

func TestVideoService_Create(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	svc := NewVideoService(videoRepo, "https://player.test/")

	videoRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.VideoRecord")).Return(nil)

	video := &domain.VideoRecord{
		Name:           "Acme",
		WebsiteURL:     "https://acme.test",
		VideoURL:       "https://cdn.test/a.mp4",
		TimeFullScreen: 5,
	}
	created, link, err := svc.Create(context.Background(), video)
	assert.NoError(t, err)
	assert.Len(t, created.ID, domain.VideoIDLength)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "https://player.test/video/"+created.ID, link)
	videoRepo.AssertExpectations(t)
}

func TestVideoService_CreateMissingFields(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	svc := NewVideoService(videoRepo, "https://player.test")

	_, _, err := svc.Create(context.Background(), &domain.VideoRecord{
		Name:       "Acme",
		WebsiteURL: "https://acme.test",
	})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
	videoRepo.AssertNotCalled(t, "Create")
}

func TestVideoService_CreateNegativeTrigger(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	svc := NewVideoService(videoRepo, "https://player.test")

	_, _, err := svc.Create(context.Background(), &domain.VideoRecord{
		Name:           "Acme",
		WebsiteURL:     "https://acme.test",
		VideoURL:       "https://cdn.test/a.mp4",
		TimeFullScreen: -1,
	})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredFields)
}

func TestVideoService_Get(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	svc := NewVideoService(videoRepo, "https://player.test")

	expected := &domain.VideoRecord{ID: "abc123def456", Name: "Acme"}
	videoRepo.On("GetByID", mock.Anything, "abc123def456").Return(expected, nil)

	video, err := svc.Get(context.Background(), "abc123def456")
	assert.NoError(t, err)
	assert.Equal(t, "Acme", video.Name)
}

func TestVideoService_GetNotFound(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	svc := NewVideoService(videoRepo, "https://player.test")

	videoRepo.On("GetByID", mock.Anything, "missing000000").Return(nil, domain.ErrVideoNotFound)

	_, err := svc.Get(context.Background(), "missing000000")
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestVideoService_Delete(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	svc := NewVideoService(videoRepo, "https://player.test")

	videoRepo.On("Delete", mock.Anything, "abc123def456").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "abc123def456"))
	videoRepo.AssertExpectations(t)
}
