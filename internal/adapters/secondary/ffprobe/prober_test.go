package ffprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"video-link-service/internal/core/domain"
)

func TestDurationSeconds(t *testing.T) {
	seconds, err := DurationSeconds("123.45")
	assert.NoError(t, err)
	assert.Equal(t, 123, seconds)

	seconds, err = DurationSeconds("60")
	assert.NoError(t, err)
	assert.Equal(t, 60, seconds)

	seconds, err = DurationSeconds(" 0.9 ")
	assert.NoError(t, err)
	assert.Equal(t, 0, seconds)
}

func TestDurationSecondsInvalid(t *testing.T) {
	for _, value := range []string{"", "bad", "-3", "NaN"} {
		_, err := DurationSeconds(value)
		assert.ErrorIs(t, err, domain.ErrNoDuration, "value %q", value)
	}
}

func TestNewProberDefaultsBinary(t *testing.T) {
	p := NewProber("  ")
	assert.Equal(t, "ffprobe", p.(*prober).binary)
}
