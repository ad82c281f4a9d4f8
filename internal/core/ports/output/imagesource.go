package ports

import (
	"context"
	"image"
)

// ImageSource fetches and decodes a remote image for the compositor.
type ImageSource interface {
	Fetch(ctx context.Context, ref string) (image.Image, error)
}
