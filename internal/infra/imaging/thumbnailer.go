// Package imaging renders JPEG thumbnails of uploaded product images.
package imaging

import (
	"image"
	"image/jpeg"
	"io"
	"math"

	// Registered decoders for the upload formats.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"padelpoint/config"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

// ErrUnsupportedFormat is returned when src is not a decodable image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

type thumbnailer struct {
	size    int
	quality int
}

func NewThumbnailer(cfg *config.Config) service.Thumbnailer {
	return &thumbnailer{size: cfg.Images.ThumbnailSize, quality: 95}
}

func (t *thumbnailer) Thumbnail(src io.Reader, dst io.Writer) error {
	img, _, err := image.Decode(src)
	if err != nil {
		return errors.Wrap(ErrUnsupportedFormat, err.Error())
	}

	bounds := img.Bounds()
	width, height := targetSize(bounds.Dx(), bounds.Dy(), t.size)

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	if err := jpeg.Encode(dst, scaled, &jpeg.Options{Quality: t.quality}); err != nil {
		return errors.Wrap(err, "encode thumbnail")
	}

	return nil
}

// targetSize fits width x height into a size x size box without upscaling.
func targetSize(width, height, size int) (int, int) {
	maxDim := max(width, height)
	if maxDim == 0 {
		return 1, 1
	}

	scale := math.Min(float64(size)/float64(maxDim), 1)

	return max(int(math.Round(float64(width)*scale)), 1), max(int(math.Round(float64(height)*scale)), 1)
}
