package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	xdraw "golang.org/x/image/draw"

	"video-link-service/internal/core/domain"
	ports "video-link-service/internal/core/ports/output"

	_ "embed"
)

//go:embed assets/overlay.png
var overlayPNG []byte

// Webcam circle geometry: fixed radius, fixed margin from the bottom-left
// corner of the canvas.
const (
	circleRadius = 150
	circleMargin = 40
)

// CompositorService synthesizes a preview image: base image scaled to the
// canvas, the fixed overlay alpha-composited on top, and a circularly masked
// webcam capture in the bottom-left corner. Pure transform, nothing is
// persisted.
type CompositorService struct {
	images ports.ImageSource
	width  int
	height int

	overlayOnce sync.Once
	overlay     image.Image
	overlayErr  error
}

func NewCompositorService(images ports.ImageSource, width, height int) *CompositorService {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	return &CompositorService{images: images, width: width, height: height}
}

func (s *CompositorService) Composite(ctx context.Context, baseRef, webcamRef string) ([]byte, error) {
	overlay, err := s.loadOverlay()
	if err != nil {
		return nil, err
	}

	base, err := s.images.Fetch(ctx, baseRef)
	if err != nil {
		return nil, fmt.Errorf("%w: base image: %v", domain.ErrCompositionSource, err)
	}
	webcam, err := s.images.Fetch(ctx, webcamRef)
	if err != nil {
		return nil, fmt.Errorf("%w: webcam image: %v", domain.ErrCompositionSource, err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	xdraw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), base, base.Bounds(), draw.Src, nil)
	xdraw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), overlay, overlay.Bounds(), draw.Over, nil)

	s.drawWebcamCircle(canvas, webcam)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode composite: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *CompositorService) drawWebcamCircle(canvas *image.RGBA, webcam image.Image) {
	center := image.Point{
		X: circleMargin + circleRadius,
		Y: s.height - circleMargin - circleRadius,
	}
	mask := &circleMask{center: center, radius: circleRadius}
	region := mask.Bounds()

	// Scale the webcam capture to fill the circle's bounding square before
	// masking, so the visible disc is fully covered.
	scaled := image.NewRGBA(region)
	xdraw.ApproxBiLinear.Scale(scaled, region, webcam, webcam.Bounds(), draw.Src, nil)

	draw.DrawMask(canvas, region, scaled, region.Min, mask, region.Min, draw.Over)
}

func (s *CompositorService) loadOverlay() (image.Image, error) {
	s.overlayOnce.Do(func() {
		img, err := png.Decode(bytes.NewReader(overlayPNG))
		if err != nil {
			s.overlayErr = fmt.Errorf("%w: %v", domain.ErrOverlayAsset, err)
			return
		}
		s.overlay = img
	})
	return s.overlay, s.overlayErr
}

// circleMask is an alpha mask that is opaque inside the circle and
// transparent outside.
type circleMask struct {
	center image.Point
	radius int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(m.center.X-m.radius, m.center.Y-m.radius, m.center.X+m.radius, m.center.Y+m.radius)
}

func (m *circleMask) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
