package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/imaging"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

// filePortfolioStore keeps the whole document in one JSON file at the
// project root. Images always live on disk under publicDir in this mode.
type filePortfolioStore struct {
	path      string
	publicDir string
	logger    logger.Logger
}

func NewFilePortfolioStore(path, publicDir string, log logger.Logger) portfolio.Repository {
	return &filePortfolioStore{path: path, publicDir: publicDir, logger: log}
}

func (s *filePortfolioStore) Load(ctx context.Context) (*portfolio.Document, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NewNotFound(fmt.Sprintf("File %s tidak ditemukan.", filepath.Base(s.path)))
		}
		return nil, apperror.NewStorage(fmt.Sprintf("Gagal membaca file: %v", err), err)
	}

	doc := &portfolio.Document{}
	if err := json.Unmarshal(content, doc); err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("Gagal membaca file: %v", err), err)
	}

	doc.Normalize()
	return doc, nil
}

func (s *filePortfolioStore) Save(ctx context.Context, doc *portfolio.Document) error {
	doc.Normalize()

	// New uploads arrive as data URIs; turn them into stored files and
	// substitute the public path before the document hits disk.
	for i := range doc.Projects {
		p := &doc.Projects[i]
		if imaging.IsInline(p.ImgSrc) {
			path, err := persistInlineImage(p.ImgSrc, s.publicDir, "projects", p.Title)
			if err != nil {
				return apperror.NewStorage(fmt.Sprintf("Gagal menyimpan data: %v", err), err)
			}
			p.ImgSrc = path
		}
	}
	for i := range doc.Tools {
		t := &doc.Tools[i]
		if imaging.IsInline(t.Icon) {
			path, err := persistInlineImage(t.Icon, s.publicDir, "tools", t.Name)
			if err != nil {
				return apperror.NewStorage(fmt.Sprintf("Gagal menyimpan data: %v", err), err)
			}
			t.Icon = path
		}
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperror.NewStorage(fmt.Sprintf("Gagal menyimpan data: %v", err), err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return apperror.NewStorage(fmt.Sprintf("Gagal menyimpan data: %v", err), err)
	}
	return nil
}
