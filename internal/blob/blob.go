package blob

import (
	"context"
	"errors"
	"io"
)

//go:generate mockgen -source=blob.go -destination=../mocks/blob.go -package=mocks

var ErrNotConfigured = errors.New("object store is not configured")

// ObjectStore holds the binary image data referenced by photo records.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// URL returns the public URL an object is served from.
	URL(key string) string
}
