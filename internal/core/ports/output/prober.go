package ports

import "context"

// DurationProber resolves the playable duration of a media source in whole
// seconds. Implementations must bound how long a single probe may take; a
// failed probe for one source says nothing about any other source.
type DurationProber interface {
	Probe(ctx context.Context, mediaRef string) (int, error)
}
