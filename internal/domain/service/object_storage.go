package service

import (
	"context"
	"io"
)

// ObjectStorage stores product image files.
type ObjectStorage interface {
	// Put uploads body under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)

	Delete(ctx context.Context, key string) error
}

// Thumbnailer renders a bounded JPEG preview of an image.
type Thumbnailer interface {
	// Thumbnail decodes src and writes a JPEG whose longest side is at most the configured size.
	Thumbnail(src io.Reader, dst io.Writer) error
}
