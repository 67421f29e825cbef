package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/imaging"
)

// persistInlineImage writes a new inline upload under the public uploads
// tree and returns its public path. baseName (usually the item title) is
// slugified into the filename the same way the dashboard expects.
func persistInlineImage(ref, publicDir, subdir, baseName string) (string, error) {
	data := imaging.DecodeInline(ref)
	if data == nil {
		return "", nil
	}

	ext := imaging.ExtensionForMIME(imaging.DetectMIME(data))
	filename := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), slugify(baseName), ext)

	dir := filepath.Join(publicDir, "uploads", subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return "/uploads/" + subdir + "/" + filename, nil
}

// removeStoredImage deletes the file behind a public path, best-effort. A
// file that is already gone is fine; other failures are reported so the
// caller can log them without aborting the save. Only the uploads tree is
// touched: shared assets (e.g. /assets/icon/*) are referenced by many rows
// and by the landing page, and are never owned by a single row.
func removeStoredImage(publicDir, publicPath string) error {
	if !strings.HasPrefix(publicPath, "/uploads/") {
		return nil
	}
	err := os.Remove(filepath.Join(publicDir, filepath.FromSlash(publicPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func slugify(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
