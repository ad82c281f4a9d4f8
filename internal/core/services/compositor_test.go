package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-link-service/internal/core/domain"
	"video-link-service/internal/testutil"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompositorService_Composite(t *testing.T) {
	images := new(testutil.MockImageSource)
	svc := NewCompositorService(images, 640, 360)

	images.On("Fetch", mock.Anything, "https://cdn.test/base.jpg").
		Return(solidImage(800, 450, color.RGBA{R: 200, A: 255}), nil)
	images.On("Fetch", mock.Anything, "https://cdn.test/webcam.jpg").
		Return(solidImage(320, 240, color.RGBA{G: 200, A: 255}), nil)

	data, err := svc.Composite(context.Background(), "https://cdn.test/base.jpg", "https://cdn.test/webcam.jpg")
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())
}

func TestCompositorService_CompositeDefaultCanvas(t *testing.T) {
	images := new(testutil.MockImageSource)
	svc := NewCompositorService(images, 0, 0)

	images.On("Fetch", mock.Anything, mock.Anything).
		Return(solidImage(100, 100, color.RGBA{B: 200, A: 255}), nil)

	data, err := svc.Composite(context.Background(), "https://cdn.test/base.jpg", "https://cdn.test/webcam.jpg")
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())
}

func TestCompositorService_CompositeWebcamFetchFailure(t *testing.T) {
	images := new(testutil.MockImageSource)
	svc := NewCompositorService(images, 640, 360)

	images.On("Fetch", mock.Anything, "https://cdn.test/base.jpg").
		Return(solidImage(100, 100, color.RGBA{A: 255}), nil)
	images.On("Fetch", mock.Anything, "https://cdn.test/webcam.jpg").
		Return(nil, errors.New("connection refused"))

	data, err := svc.Composite(context.Background(), "https://cdn.test/base.jpg", "https://cdn.test/webcam.jpg")
	assert.ErrorIs(t, err, domain.ErrCompositionSource)
	assert.Nil(t, data)
}

func TestCompositorService_CompositeBaseFetchFailure(t *testing.T) {
	images := new(testutil.MockImageSource)
	svc := NewCompositorService(images, 640, 360)

	images.On("Fetch", mock.Anything, "https://cdn.test/base.jpg").
		Return(nil, errors.New("404"))

	_, err := svc.Composite(context.Background(), "https://cdn.test/base.jpg", "https://cdn.test/webcam.jpg")
	assert.ErrorIs(t, err, domain.ErrCompositionSource)
}

func TestCircleMask(t *testing.T) {
	mask := &circleMask{center: image.Point{X: 100, Y: 100}, radius: 50}

	assert.Equal(t, image.Rect(50, 50, 150, 150), mask.Bounds())

	_, _, _, a := mask.At(100, 100).RGBA()
	assert.NotZero(t, a, "center must be opaque")

	_, _, _, a = mask.At(51, 51).RGBA()
	assert.Zero(t, a, "bounding-box corner must be transparent")
}
