package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the requested object key does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStore holds binary assets: profile pictures, game images and game
// files. Keys are opaque strings recorded on the owning entity.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Download(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}
