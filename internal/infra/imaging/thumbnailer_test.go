package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/errors"
)

func pngOf(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))

	return buf
}

func TestThumbnail_ScalesLongestSide(t *testing.T) {
	thumb := NewThumbnailer(&config.Config{Images: &config.ImagesConfig{ThumbnailSize: 64}})

	out := &bytes.Buffer{}
	require.NoError(t, thumb.Thumbnail(pngOf(t, 256, 128), out))

	decoded, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 32, decoded.Bounds().Dy())
}

func TestThumbnail_NeverUpscales(t *testing.T) {
	thumb := NewThumbnailer(&config.Config{Images: &config.ImagesConfig{ThumbnailSize: 320}})

	out := &bytes.Buffer{}
	require.NoError(t, thumb.Thumbnail(pngOf(t, 40, 20), out))

	decoded, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), decoded.Bounds().Size())
}

func TestThumbnail_RejectsNonImages(t *testing.T) {
	thumb := NewThumbnailer(&config.Config{Images: &config.ImagesConfig{ThumbnailSize: 64}})

	err := thumb.Thumbnail(bytes.NewReader([]byte("%PDF-1.7")), &bytes.Buffer{})
	require.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestTargetSize(t *testing.T) {
	w, h := targetSize(1000, 1, 100)
	assert.Equal(t, 100, w)
	assert.Equal(t, 1, h)

	w, h = targetSize(0, 0, 100)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
