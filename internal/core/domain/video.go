package domain

import (
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// VideoIDLength is the length of public video identifiers. Identifiers are
// generated probabilistically; uniqueness is not coordinated across instances.
const VideoIDLength = 12

// VideoRecord is a registered video landing page. ID is the short public
// identifier used in shareable links, not a storage-internal key.
type VideoRecord struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	WebsiteURL     string    `json:"websiteUrl"`
	VideoURL       string    `json:"videoUrl"`
	TimeFullScreen int       `json:"timeFullScreen"`
	VideoDuration  *int      `json:"videoDuration"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewVideoID returns a fresh collision-resistant public identifier.
func NewVideoID() (string, error) {
	return gonanoid.New(VideoIDLength)
}

// Validate checks required fields for the single-record create path.
func (v *VideoRecord) Validate() error {
	if strings.TrimSpace(v.Name) == "" ||
		strings.TrimSpace(v.WebsiteURL) == "" ||
		strings.TrimSpace(v.VideoURL) == "" {
		return ErrMissingRequiredFields
	}
	if v.TimeFullScreen < 0 {
		return ErrMissingRequiredFields
	}
	return nil
}
