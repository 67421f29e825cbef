package service

import (
	"context"
	"io"
)

// Uploader persists one uploaded file and returns the public path (or URL)
// the dashboard should reference it by.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, originalName string) (string, error)
}
