// Package ffprobe resolves media durations by shelling out to ffprobe, which
// reads container metadata from local paths and remote URLs alike.
package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"
)

var commandContext = exec.CommandContext

type prober struct {
	binary string
}

// NewProber returns a DurationProber backed by the given ffprobe binary name.
func NewProber(binary string) ports.DurationProber {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &prober{binary: binary}
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe returns the container duration floored to whole seconds. The caller
// bounds execution through ctx; an expired context kills the process.
func (p *prober) Probe(ctx context.Context, mediaRef string) (int, error) {
	mediaRef = strings.TrimSpace(mediaRef)
	if mediaRef == "" {
		return 0, errors.New("ffprobe: empty media reference")
	}

	cmd := commandContext(ctx, p.binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", mediaRef)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w: %s", mediaRef, err, strings.TrimSpace(string(output)))
	}

	var parsed probeOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}
	return DurationSeconds(parsed.Format.Duration)
}

// DurationSeconds converts ffprobe's fractional duration string to whole
// seconds, flooring the fraction.
func DurationSeconds(value string) (int, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(seconds) || seconds < 0 {
		return 0, fmt.Errorf("%w: duration %q", domain.ErrNoDuration, value)
	}
	return int(math.Floor(seconds)), nil
}
