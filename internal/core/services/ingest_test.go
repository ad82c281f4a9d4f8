package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-link-service/internal/core/domain"
	"video-link-service/internal/testutil"
)

type ingestFixture struct {
	videoRepo    *testutil.MockVideoRepo
	artifactRepo *testutil.MockArtifactRepo
	prober       *testutil.MockProber
	files        *testutil.MockFileStore
	svc          *IngestService

	mu      sync.Mutex
	created []*domain.VideoRecord
}

func newIngestFixture() *ingestFixture {
	f := &ingestFixture{
		videoRepo:    new(testutil.MockVideoRepo),
		artifactRepo: new(testutil.MockArtifactRepo),
		prober:       new(testutil.MockProber),
		files:        new(testutil.MockFileStore),
	}
	videoSvc := NewVideoService(f.videoRepo, "https://player.test")
	f.svc = NewIngestService(f.videoRepo, f.artifactRepo, f.prober, f.files, videoSvc, IngestOptions{
		ProbeConcurrency: 2,
	})
	return f
}

func (f *ingestFixture) captureCreates() {
	f.videoRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.VideoRecord")).
		Run(func(args mock.Arguments) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.created = append(f.created, args.Get(1).(*domain.VideoRecord))
		}).Return(nil)
}

const batchCSV = "name,websiteUrl,videoUrl,timeFullScreen\n" +
	"Acme,https://acme.test,https://cdn.test/a.mp4,5\n" +
	"Beta,https://beta.test,https://cdn.test/b.mp4,10\n" +
	"Gamma,https://gamma.test,https://cdn.test/c.mp4,15\n"

func TestIngestService_CreateBulk(t *testing.T) {
	f := newIngestFixture()
	f.captureCreates()

	f.prober.On("Probe", mock.Anything, "https://cdn.test/a.mp4").Return(61, nil)
	f.prober.On("Probe", mock.Anything, "https://cdn.test/b.mp4").Return(120, nil)
	f.prober.On("Probe", mock.Anything, "https://cdn.test/c.mp4").Return(33, nil)
	f.files.On("Write", "videos.csv", mock.Anything).Return("/downloads/videos.csv", nil)

	var artifact *domain.ArtifactRecord
	f.artifactRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ArtifactRecord")).
		Run(func(args mock.Arguments) {
			artifact = args.Get(1).(*domain.ArtifactRecord)
		}).Return(nil)

	result, err := f.svc.CreateBulk(context.Background(), []byte(batchCSV), "videos.csv")
	assert.NoError(t, err)
	assert.Len(t, result.Links, 3)
	assert.Equal(t, "/downloads/videos.csv", result.DownloadLink)

	// the i-th link corresponds to the i-th eligible row
	assert.Len(t, f.created, 3)
	assert.Equal(t, "Acme", f.created[0].Name)
	assert.Equal(t, "Gamma", f.created[2].Name)
	for i, record := range f.created {
		assert.Equal(t, "https://player.test/video/"+record.ID, result.Links[i])
	}
	assert.Equal(t, 61, *f.created[0].VideoDuration)
	assert.Equal(t, 120, *f.created[1].VideoDuration)
	assert.Equal(t, 33, *f.created[2].VideoDuration)

	assert.NotNil(t, artifact)
	assert.Equal(t, "videos.csv", artifact.FileName)
	assert.Equal(t, 3, artifact.NumberOfPages)
	assert.Len(t, artifact.VideoIDs, 3)
	for i, record := range f.created {
		assert.Equal(t, record.ID, artifact.VideoIDs[i])
	}
}

func TestIngestService_CreateBulkDropsIneligibleRows(t *testing.T) {
	f := newIngestFixture()
	f.captureCreates()

	data := "name,websiteUrl,videoUrl,timeFullScreen\n" +
		"Acme,https://acme.test,https://cdn.test/a.mp4,5\n" +
		"NoVideo,https://beta.test,,10\n" +
		"Gamma,https://gamma.test,https://cdn.test/c.mp4,15\n"

	f.prober.On("Probe", mock.Anything, mock.Anything).Return(60, nil)
	f.files.On("Write", mock.Anything, mock.Anything).Return("/downloads/out.csv", nil)
	f.artifactRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.CreateBulk(context.Background(), []byte(data), "")
	assert.NoError(t, err)
	assert.Len(t, result.Links, 2)
	assert.Len(t, f.created, 2)
	assert.Equal(t, "Acme", f.created[0].Name)
	assert.Equal(t, "Gamma", f.created[1].Name)
}

func TestIngestService_CreateBulkProbeFailureDoesNotAbort(t *testing.T) {
	f := newIngestFixture()
	f.captureCreates()

	f.prober.On("Probe", mock.Anything, "https://cdn.test/a.mp4").Return(61, nil)
	f.prober.On("Probe", mock.Anything, "https://cdn.test/b.mp4").Return(0, errors.New("probe timed out"))
	f.prober.On("Probe", mock.Anything, "https://cdn.test/c.mp4").Return(33, nil)
	f.files.On("Write", mock.Anything, mock.Anything).Return("/downloads/out.csv", nil)
	f.artifactRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.CreateBulk(context.Background(), []byte(batchCSV), "")
	assert.NoError(t, err)
	assert.Len(t, result.Links, 3)
	assert.Len(t, f.created, 3)
	assert.NotNil(t, f.created[0].VideoDuration)
	assert.Nil(t, f.created[1].VideoDuration)
	assert.NotNil(t, f.created[2].VideoDuration)
}

func TestIngestService_CreateBulkEmptyBatch(t *testing.T) {
	f := newIngestFixture()

	data := "name,websiteUrl,videoUrl,timeFullScreen\n" +
		"MissingEverything,,,\n"

	_, err := f.svc.CreateBulk(context.Background(), []byte(data), "")
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	f.videoRepo.AssertNotCalled(t, "Create")
	f.artifactRepo.AssertNotCalled(t, "Create")
}

func TestIngestService_CreateBulkMalformed(t *testing.T) {
	f := newIngestFixture()

	_, err := f.svc.CreateBulk(context.Background(), []byte("name\n\"broken"), "")
	assert.ErrorIs(t, err, domain.ErrMalformedBatch)
	f.videoRepo.AssertNotCalled(t, "Create")
}

func TestIngestService_CreateBulkFileWriteFailureCompensates(t *testing.T) {
	f := newIngestFixture()
	f.captureCreates()

	f.prober.On("Probe", mock.Anything, mock.Anything).Return(60, nil)
	f.files.On("Write", mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	var compensated []string
	f.videoRepo.On("DeleteMany", mock.Anything, mock.AnythingOfType("[]string")).
		Run(func(args mock.Arguments) {
			compensated = args.Get(1).([]string)
		}).Return(3, nil)

	_, err := f.svc.CreateBulk(context.Background(), []byte(batchCSV), "")
	assert.Error(t, err)
	f.artifactRepo.AssertNotCalled(t, "Create")

	assert.Len(t, compensated, 3)
	for i, record := range f.created {
		assert.Equal(t, record.ID, compensated[i])
	}
}

func TestIngestService_CreateBulkArtifactCreateFailureCleansUp(t *testing.T) {
	f := newIngestFixture()
	f.captureCreates()

	f.prober.On("Probe", mock.Anything, mock.Anything).Return(60, nil)
	f.files.On("Write", mock.Anything, mock.Anything).Return("/downloads/out.csv", nil)
	f.files.On("Remove", "/downloads/out.csv").Return(nil)
	f.artifactRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.videoRepo.On("DeleteMany", mock.Anything, mock.Anything).Return(3, nil)

	_, err := f.svc.CreateBulk(context.Background(), []byte(batchCSV), "")
	assert.Error(t, err)
	f.files.AssertCalled(t, "Remove", "/downloads/out.csv")
	f.videoRepo.AssertCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}

func TestIngestService_CreateBulkTimeout(t *testing.T) {
	videoRepo := new(testutil.MockVideoRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	prober := new(testutil.MockProber)
	files := new(testutil.MockFileStore)
	videoSvc := NewVideoService(videoRepo, "https://player.test")
	svc := NewIngestService(videoRepo, artifactRepo, prober, files, videoSvc, IngestOptions{
		ProbeConcurrency: 2,
		ProbeTimeout:     time.Second,
		CallTimeout:      20 * time.Millisecond,
	})

	// probes hang until the whole-call deadline cancels them
	prober.On("Probe", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).Return(0, context.DeadlineExceeded)

	_, err := svc.CreateBulk(context.Background(), []byte(batchCSV), "")
	assert.ErrorIs(t, err, domain.ErrIngestTimeout)
	videoRepo.AssertNotCalled(t, "Create")
	files.AssertNotCalled(t, "Write")
	artifactRepo.AssertNotCalled(t, "Create")
}

func TestIngestService_CreateBulkPersistenceFailureCompensates(t *testing.T) {
	f := newIngestFixture()

	f.prober.On("Probe", mock.Anything, mock.Anything).Return(60, nil)

	// second create fails; the first must be compensated
	f.videoRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.videoRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	f.videoRepo.On("DeleteMany", mock.Anything, mock.Anything).Return(1, nil)

	_, err := f.svc.CreateBulk(context.Background(), []byte(batchCSV), "")
	assert.Error(t, err)
	f.videoRepo.AssertCalled(t, "DeleteMany", mock.Anything, mock.Anything)
	f.artifactRepo.AssertNotCalled(t, "Create")
	f.files.AssertNotCalled(t, "Write")
}
