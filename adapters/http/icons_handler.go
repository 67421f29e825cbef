package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

var iconExtensions = map[string]bool{
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type IconsHandler struct {
	iconsDir string
	logger   logger.Logger
}

func NewIconsHandler(iconsDir string, log logger.Logger) *IconsHandler {
	return &IconsHandler{iconsDir: iconsDir, logger: log}
}

// List returns the image filenames in the fixed icon assets directory, so
// the dashboard can offer existing icons without a re-upload.
func (h *IconsHandler) List(c *gin.Context) {
	entries, err := os.ReadDir(h.iconsDir)
	if err != nil {
		c.Error(apperror.NewStorage("Direktori ikon tidak ditemukan atau gagal dibaca.", err))
		return
	}

	icons := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if iconExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			icons = append(icons, entry.Name())
		}
	}

	c.JSON(http.StatusOK, IconsResponse{Icons: icons})
}
