// Package storage defines the interface for artifact upload backends.
// The backend is selected once at startup — the S3 implementation works with
// any S3-compatible provider, the CDN implementation relays to an external
// upload endpoint. Both hand the publisher a plain public URL so it never
// inspects backend-specific response shapes.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUploadFailed is returned when a backend call fails or comes back
// without a usable URL. The publish flow treats it as terminal: no metadata
// record is written.
var ErrUploadFailed = errors.New("artifact upload failed")

// Uploader pushes an artifact to the configured backend and returns the
// durable URL it can be fetched from.
type Uploader interface {
	// Upload streams size bytes from r under the given filename. size must be
	// the exact byte count.
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
}
