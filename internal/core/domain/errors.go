package domain

import "errors"

// Not found errors
var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Validation errors
var (
	ErrMissingRequiredFields = errors.New("name, websiteUrl and videoUrl are required")
	ErrMalformedBatch        = errors.New("uploaded file is not a parsable CSV document")
	ErrEmptyBatch            = errors.New("no eligible rows in uploaded file")
	ErrInvalidFileName       = errors.New("file name must not contain path separators")
)

// Per-row resolution failure. Absorbed by the ingestion pipeline: the row is
// persisted with VideoDuration nil, the batch continues.
var ErrNoDuration = errors.New("media duration could not be resolved")

// Compositor errors
var (
	ErrCompositionSource = errors.New("base or webcam image could not be fetched")
	ErrOverlayAsset      = errors.New("overlay asset unavailable")
)

// Batch-level timeout
var ErrIngestTimeout = errors.New("bulk ingestion timed out")

// Partial cascade failure: records were removed but the backing file was not.
var ErrFileRemoval = errors.New("artifact records deleted but backing file removal failed")
