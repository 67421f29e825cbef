package media_storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/config"
)

func TestLocalDiskUpload(t *testing.T) {
	dir := t.TempDir()
	var cfg config.Config
	cfg.Storage.UploadDir = filepath.Join(dir, "uploads")

	adapter := NewLocalDiskAdapter(cfg)
	payload := []byte("fake image bytes")

	publicPath, err := adapter.Upload(context.Background(), bytes.NewReader(payload), "my icon.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.NotContains(t, publicPath, " ")
	assert.True(t, strings.HasSuffix(publicPath, "my_icon.png"))

	onDisk, err := os.ReadFile(filepath.Join(cfg.Storage.UploadDir, strings.TrimPrefix(publicPath, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, payload, onDisk)
}

func TestUniqueFilenameAvoidsCollisions(t *testing.T) {
	a := uniqueFilename("logo.svg")
	b := uniqueFilename("logo.svg")
	assert.NotEqual(t, a, b)
}
