package media_storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/application/service"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/config"
)

// localDiskAdapter stores uploads under the public assets root and serves
// them back as /uploads/<name> paths.
type localDiskAdapter struct {
	uploadDir string
}

func NewLocalDiskAdapter(cfg config.Config) service.Uploader {
	return &localDiskAdapter{uploadDir: cfg.Storage.UploadDir}
}

func (a *localDiskAdapter) Upload(ctx context.Context, file io.Reader, originalName string) (string, error) {
	// MkdirAll is idempotent, so a directory appearing concurrently is fine.
	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create upload directory: %w", err)
	}

	filename := uniqueFilename(originalName)

	out, err := os.Create(filepath.Join(a.uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("cannot create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("cannot write upload file: %w", err)
	}

	return "/uploads/" + filename, nil
}

// uniqueFilename combines the current time with a random component and a
// sanitized original name, so concurrent uploads never collide and never
// carry whitespace into the public path.
func uniqueFilename(originalName string) string {
	sanitized := strings.Join(strings.Fields(originalName), "_")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), suffix, sanitized)
}
