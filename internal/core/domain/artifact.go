package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactRecord describes a generated bulk file. It owns the cascade
// relationship: deleting an artifact deletes every video in VideoIDs and the
// backing file. Deleting a single video does NOT prune it from VideoIDs; a
// later cascade tolerates the already-gone id.
type ArtifactRecord struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"fileName"`
	NumberOfPages int       `json:"numberOfPages"`
	GeneratedAt   time.Time `json:"generatedAt"`
	DownloadLink  string    `json:"downloadLink"`
	VideoIDs      []string  `json:"videoIds"`
}

// BatchRow is one validated row of a bulk upload. TimeFullScreen has already
// been parsed; rows that fail parsing never become a BatchRow.
type BatchRow struct {
	Name           string
	WebsiteURL     string
	VideoURL       string
	TimeFullScreen int
	Image          string
}
