package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
	"video-link-service/internal/tabular"
)

// IngestOptions bound the resources a single bulk call may consume.
type IngestOptions struct {
	// ProbeConcurrency caps simultaneous in-flight duration probes.
	ProbeConcurrency int
	// ProbeTimeout bounds a single duration probe.
	ProbeTimeout time.Duration
	// CallTimeout bounds the whole bulk ingestion call.
	CallTimeout time.Duration
}

// IngestService drives the bulk pipeline: parse, validate, enrich with media
// durations, persist, generate the downloadable artifact.
type IngestService struct {
	videoRepo    ports.VideoRepository
	artifactRepo ports.ArtifactRepository
	prober       ports.DurationProber
	files        ports.ArtifactFileStore
	videoSvc     *VideoService
	opts         IngestOptions
}

func NewIngestService(
	videoRepo ports.VideoRepository,
	artifactRepo ports.ArtifactRepository,
	prober ports.DurationProber,
	files ports.ArtifactFileStore,
	videoSvc *VideoService,
	opts IngestOptions,
) *IngestService {
	if opts.ProbeConcurrency <= 0 {
		opts.ProbeConcurrency = 4
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 15 * time.Second
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 5 * time.Minute
	}
	return &IngestService{
		videoRepo:    videoRepo,
		artifactRepo: artifactRepo,
		prober:       prober,
		files:        files,
		videoSvc:     videoSvc,
		opts:         opts,
	}
}

// BulkResult is the outcome of a bulk ingestion: one link per eligible row,
// in row order, plus the artifact download reference.
type BulkResult struct {
	Links        []string
	DownloadLink string
}

func (s *IngestService) CreateBulk(ctx context.Context, data []byte, originalFileName string) (*BulkResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()

	doc, err := tabular.Parse(data)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.BatchRow, 0, len(doc.Rows))
	for _, raw := range doc.Rows {
		if raw.Eligible(doc.HasImage) {
			rows = append(rows, raw.ToBatchRow())
		}
	}
	if dropped := len(doc.Rows) - len(rows); dropped > 0 {
		log.WithFields(log.Fields{"dropped": dropped, "eligible": len(rows)}).
			Info("bulk upload rows missing required fields were dropped")
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	durations, err := s.resolveDurations(ctx, rows)
	if err != nil {
		return nil, asIngestErr(err)
	}

	records, links, err := s.persistRows(ctx, rows, durations)
	if err != nil {
		return nil, asIngestErr(err)
	}

	downloadLink, err := s.generateArtifact(ctx, rows, durations, links, records, doc.HasImage, originalFileName)
	if err != nil {
		s.compensate(records)
		return nil, asIngestErr(err)
	}

	return &BulkResult{Links: links, DownloadLink: downloadLink}, nil
}

// resolveDurations probes every row's media source with bounded parallelism.
// A failed probe leaves a nil duration for that row and never aborts the
// batch; only cancellation of the whole call stops early.
func (s *IngestService) resolveDurations(ctx context.Context, rows []domain.BatchRow) ([]*int, error) {
	durations := make([]*int, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.ProbeConcurrency)
	for i, row := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			probeCtx, cancel := context.WithTimeout(gctx, s.opts.ProbeTimeout)
			defer cancel()

			seconds, err := s.prober.Probe(probeCtx, row.VideoURL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.WithField("videoUrl", row.VideoURL).WithError(err).
					Warn("duration probe failed; row will be stored without a duration")
				return nil
			}
			durations[i] = &seconds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return durations, nil
}

// persistRows creates one VideoRecord per row, in row order, compensating
// already-created records if a later write fails.
func (s *IngestService) persistRows(ctx context.Context, rows []domain.BatchRow, durations []*int) ([]*domain.VideoRecord, []string, error) {
	records := make([]*domain.VideoRecord, 0, len(rows))
	links := make([]string, 0, len(rows))

	for i, row := range rows {
		id, err := domain.NewVideoID()
		if err != nil {
			s.compensate(records)
			return nil, nil, fmt.Errorf("generate video id: %w", err)
		}
		record := &domain.VideoRecord{
			ID:             id,
			Name:           row.Name,
			WebsiteURL:     row.WebsiteURL,
			VideoURL:       row.VideoURL,
			TimeFullScreen: row.TimeFullScreen,
			VideoDuration:  durations[i],
			Image:          row.Image,
			CreatedAt:      time.Now(),
		}
		if err := s.videoRepo.Create(ctx, record); err != nil {
			s.compensate(records)
			return nil, nil, err
		}
		records = append(records, record)
		links = append(links, s.videoSvc.Link(record.ID))
	}
	return records, links, nil
}

// generateArtifact writes the annotated file first, then the artifact record,
// so a record never points at a file that does not exist.
func (s *IngestService) generateArtifact(ctx context.Context, rows []domain.BatchRow, durations []*int, links []string, records []*domain.VideoRecord, includeImage bool, originalFileName string) (string, error) {
	outputs := make([]tabular.OutputRow, len(rows))
	for i := range rows {
		outputs[i] = tabular.OutputRow{Row: rows[i], Duration: durations[i], Link: links[i]}
	}
	serialized, err := tabular.Serialize(outputs, includeImage)
	if err != nil {
		return "", err
	}

	fileName := originalFileName
	if fileName == "" {
		fileName = fmt.Sprintf("generated_videos_%d.csv", time.Now().UnixMilli())
	}

	downloadLink, err := s.files.Write(fileName, serialized)
	if err != nil {
		return "", err
	}

	videoIDs := make([]string, len(records))
	for i, record := range records {
		videoIDs[i] = record.ID
	}
	artifact := &domain.ArtifactRecord{
		ID:            uuid.New(),
		FileName:      fileName,
		NumberOfPages: len(rows),
		GeneratedAt:   time.Now(),
		DownloadLink:  downloadLink,
		VideoIDs:      videoIDs,
	}
	if err := s.artifactRepo.Create(ctx, artifact); err != nil {
		if rmErr := s.files.Remove(downloadLink); rmErr != nil {
			log.WithField("downloadLink", downloadLink).WithError(rmErr).
				Warn("could not remove artifact file after record create failure")
		}
		return "", err
	}
	return downloadLink, nil
}

// compensate removes records persisted for a batch that ultimately failed,
// so no later cascade can see a half-created batch.
func (s *IngestService) compensate(records []*domain.VideoRecord) {
	if len(records) == 0 {
		return
	}
	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := s.videoRepo.DeleteMany(ctx, ids); err != nil {
		log.WithField("count", len(ids)).WithError(err).
			Error("could not compensate batch records after ingestion failure")
	}
}

func asIngestErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrIngestTimeout
	}
	return err
}
