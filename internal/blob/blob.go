// Package blob is the object-storage collaborator: media bytes go in, a
// retrievable URL comes out.
package blob

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Unconfigured for every upload.
var ErrNotConfigured = errors.New("blob storage not configured")

type Uploader interface {
	// Upload stores data under name and returns the retrievable URL.
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

// Unconfigured stands in when no blob storage is configured; text-only
// posting still works, media uploads fail cleanly.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, string, []byte) (string, error) {
	return "", ErrNotConfigured
}
