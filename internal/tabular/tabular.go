package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"video-link-service/internal/core/domain"
)

// Column names recognized in batch uploads. Matching is case-sensitive after
// whitespace trimming, mirroring the header-keyed uploads the form produces.
const (
	colName           = "name"
	colWebsiteURL     = "websiteUrl"
	colVideoURL       = "videoUrl"
	colTimeFullScreen = "timeFullScreen"
	colImage          = "image"
	colVideoDuration  = "videoDuration"
	colLink           = "link"
)

// Row is one raw record of an uploaded document. Values are untrimmed cell
// contents; validation happens in the ingestion pipeline.
type Row struct {
	Name           string
	WebsiteURL     string
	VideoURL       string
	TimeFullScreen string
	Image          string
}

// Document is a structurally parsed batch upload.
type Document struct {
	// HasImage reports whether the header declared an image column. When it
	// did, rows must carry a value to be eligible.
	HasImage bool
	Rows     []Row
}

// Parse decodes a header-first CSV document. Any structural failure aborts
// the whole batch with ErrMalformedBatch; unknown columns are ignored and
// fully empty rows are skipped.
func Parse(data []byte) (*Document, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedBatch, err)
	}
	if len(records) == 0 {
		return &Document{}, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		index[strings.TrimSpace(h)] = i
	}

	doc := &Document{}
	_, doc.HasImage = index[colImage]

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for _, record := range records[1:] {
		row := Row{
			Name:           cell(record, colName),
			WebsiteURL:     cell(record, colWebsiteURL),
			VideoURL:       cell(record, colVideoURL),
			TimeFullScreen: cell(record, colTimeFullScreen),
			Image:          cell(record, colImage),
		}
		if row == (Row{}) {
			continue
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

// Eligible reports whether the row carries every required field. The image
// column is required only when the document declares it.
func (r Row) Eligible(requireImage bool) bool {
	if r.Name == "" || r.WebsiteURL == "" || r.VideoURL == "" || r.TimeFullScreen == "" {
		return false
	}
	if requireImage && r.Image == "" {
		return false
	}
	n, err := strconv.Atoi(r.TimeFullScreen)
	return err == nil && n >= 0
}

// ToBatchRow converts an eligible row into its typed form. Call only after
// Eligible returned true.
func (r Row) ToBatchRow() domain.BatchRow {
	n, _ := strconv.Atoi(r.TimeFullScreen)
	return domain.BatchRow{
		Name:           r.Name,
		WebsiteURL:     r.WebsiteURL,
		VideoURL:       r.VideoURL,
		TimeFullScreen: n,
		Image:          r.Image,
	}
}

// OutputRow is one enriched row of the generated artifact.
type OutputRow struct {
	Row      domain.BatchRow
	Duration *int
	Link     string
}

// Serialize renders the annotated artifact: original fields, resolved
// duration, and the generated link, with a header row and stable column
// order. The image column appears only when the upload declared one.
func Serialize(rows []OutputRow, includeImage bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{colName, colWebsiteURL, colVideoURL, colTimeFullScreen}
	if includeImage {
		header = append(header, colImage)
	}
	header = append(header, colVideoDuration, colLink)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, out := range rows {
		record := []string{
			out.Row.Name,
			out.Row.WebsiteURL,
			out.Row.VideoURL,
			strconv.Itoa(out.Row.TimeFullScreen),
		}
		if includeImage {
			record = append(record, out.Row.Image)
		}
		duration := ""
		if out.Duration != nil {
			duration = strconv.Itoa(*out.Duration)
		}
		record = append(record, duration, out.Link)
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
