package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotConfigured is returned when no backing bucket has been set. The
// handlers surface it as a flash message rather than a hard failure.
var ErrNotConfigured = errors.New("object storage is not configured: set S3_BUCKET_NAME")

// ObjectStore hides the object-storage service behind key-based references.
// Upload returns an opaque key; PresignGet turns a key into a time-limited
// retrieval URL. Keys are never reused.
type ObjectStore interface {
	Upload(ctx context.Context, r io.Reader, filename string) (string, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
