// Package imagesource fetches and decodes remote images over HTTP.
package imagesource

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	ports "video-link-service/internal/core/ports/output"
)

type httpSource struct {
	client *http.Client
}

// NewHTTPSource returns an ImageSource with a bounded per-fetch timeout.
// No retries: a fetch failure surfaces immediately.
func NewHTTPSource(timeout time.Duration) ports.ImageSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpSource{client: &http.Client{Timeout: timeout}}
}

func (s *httpSource) Fetch(ctx context.Context, ref string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
