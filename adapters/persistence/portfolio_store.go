package persistence

import (
	"bytes"
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/imaging"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

// postgresPortfolioStore assembles the portfolio document from the settings,
// tools and projects tables, and decomposes it back on save. A save runs as
// one transaction: settings update, then per-collection deletions and
// upserts, all-or-nothing.
type postgresPortfolioStore struct {
	db        *pgxpool.Pool
	images    portfolio.ImageStorage
	publicDir string
	logger    logger.Logger
}

func NewPostgresPortfolioStore(db *pgxpool.Pool, images portfolio.ImageStorage, publicDir string, log logger.Logger) portfolio.Repository {
	return &postgresPortfolioStore{db: db, images: images, publicDir: publicDir, logger: log}
}

func (s *postgresPortfolioStore) Load(ctx context.Context) (*portfolio.Document, error) {
	settings, err := loadSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	toolRows, err := listToolRows(ctx, s.db)
	if err != nil {
		return nil, err
	}
	projectRows, err := listProjectRows(ctx, s.db)
	if err != nil {
		return nil, err
	}

	doc := &portfolio.Document{
		AboutMe: settings[portfolio.SettingAboutMe],
		Education: portfolio.Education{
			University: settings[portfolio.SettingEducationUniversity],
			Major:      settings[portfolio.SettingEducationMajor],
			Period:     settings[portfolio.SettingEducationPeriod],
		},
		Tools:    make([]portfolio.Tool, 0, len(toolRows)),
		Projects: make([]portfolio.Project, 0, len(projectRows)),
	}

	for _, t := range toolRows {
		doc.Tools = append(doc.Tools, portfolio.Tool{
			ID:   t.ID,
			Name: t.Name,
			Icon: s.renderImage(t.Icon),
		})
	}
	for _, p := range projectRows {
		doc.Projects = append(doc.Projects, portfolio.Project{
			ID:     p.ID,
			Title:  p.Title,
			Tech:   portfolio.SplitTech(p.Tech),
			ImgSrc: s.renderImage(p.ImgSrc),
		})
	}

	return doc, nil
}

func (s *postgresPortfolioStore) Save(ctx context.Context, doc *portfolio.Document) error {
	doc.Normalize()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return apperror.NewStorage("Gagal memulai transaksi penyimpanan.", err)
	}
	defer tx.Rollback(ctx)

	if err := updateSettings(ctx, tx, doc); err != nil {
		return err
	}
	if err := s.reconcileTools(ctx, tx, doc.Tools); err != nil {
		return err
	}
	if err := s.reconcileProjects(ctx, tx, doc.Projects); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewStorage("Gagal menyimpan data.", err)
	}
	return nil
}

// reconcileTools makes the tools table match the submitted list exactly:
// rows absent from the submission are deleted (with their stored icon file
// in path mode), rows with an id are updated in place, rows without one are
// inserted with a server-assigned id.
func (s *postgresPortfolioStore) reconcileTools(ctx context.Context, q querier, tools []portfolio.Tool) error {
	existing, err := listToolRows(ctx, q)
	if err != nil {
		return err
	}

	existingIDs := make([]int64, 0, len(existing))
	imageByID := make(map[int64][]byte, len(existing))
	for _, row := range existing {
		existingIDs = append(existingIDs, row.ID)
		imageByID[row.ID] = row.Icon
	}

	doomed := portfolio.IDsToDelete(existingIDs, portfolio.SubmittedIDs(tools))
	s.cleanupImageFiles(doomed, imageByID)
	if err := deleteTools(ctx, q, doomed); err != nil {
		return err
	}

	for _, t := range tools {
		icon, err := s.storedImage(t.Icon, "tools", t.Name)
		if err != nil {
			return err
		}
		if t.ID > 0 {
			if err := updateTool(ctx, q, t.ID, t.Name, icon); err != nil {
				return err
			}
		} else if err := insertTool(ctx, q, t.Name, icon); err != nil {
			return err
		}
	}
	return nil
}

func (s *postgresPortfolioStore) reconcileProjects(ctx context.Context, q querier, projects []portfolio.Project) error {
	existing, err := listProjectRows(ctx, q)
	if err != nil {
		return err
	}

	existingIDs := make([]int64, 0, len(existing))
	imageByID := make(map[int64][]byte, len(existing))
	for _, row := range existing {
		existingIDs = append(existingIDs, row.ID)
		imageByID[row.ID] = row.ImgSrc
	}

	doomed := portfolio.IDsToDelete(existingIDs, portfolio.SubmittedIDs(projects))
	s.cleanupImageFiles(doomed, imageByID)
	if err := deleteProjects(ctx, q, doomed); err != nil {
		return err
	}

	for _, p := range projects {
		img, err := s.storedImage(p.ImgSrc, "projects", p.Title)
		if err != nil {
			return err
		}
		tech := portfolio.JoinTech(p.Tech)
		if p.ID > 0 {
			if err := updateProject(ctx, q, p.ID, p.Title, tech, img); err != nil {
				return err
			}
		} else if err := insertProject(ctx, q, p.Title, tech, img); err != nil {
			return err
		}
	}
	return nil
}

// cleanupImageFiles removes the files behind rows about to be deleted.
// Best-effort: a failed delete is logged and never aborts the save. In
// inline mode rows own their bytes and nothing lives on disk.
func (s *postgresPortfolioStore) cleanupImageFiles(doomed []int64, imageByID map[int64][]byte) {
	if s.images != portfolio.ImageStoragePath {
		return
	}
	for _, id := range doomed {
		publicPath := string(imageByID[id])
		if err := removeStoredImage(s.publicDir, publicPath); err != nil {
			s.logger.Warn("failed to remove stored image of deleted row",
				zap.Int64("id", id), zap.String("path", publicPath), zap.Error(err))
		}
	}
}

// renderImage converts a stored image column back to the form the
// presentation layer expects for the active sub-mode. Even in inline
// sub-mode a column can hold a path: icons picked from /api/icons keep
// their public path, so only raw payload bytes are re-encoded.
func (s *postgresPortfolioStore) renderImage(stored []byte) string {
	if s.images == portfolio.ImageStorageInline && !isPathRef(stored) {
		return imaging.EncodeInline(stored)
	}
	return string(stored)
}

// isPathRef reports whether a stored image column holds a public path or a
// hosted URL rather than raw image bytes. Real image payloads (PNG, JPEG,
// WEBP, SVG) never start with '/' or "http".
func isPathRef(stored []byte) bool {
	return bytes.HasPrefix(stored, []byte("/")) || bytes.HasPrefix(stored, []byte("http"))
}

// storedImage resolves a submitted image reference to its column value. An
// inline reference is a new upload: in path mode it becomes a stored file
// and the column keeps the path; in inline mode the column keeps the decoded
// bytes. Anything already a path passes through untouched.
func (s *postgresPortfolioStore) storedImage(ref, subdir, baseName string) ([]byte, error) {
	if !imaging.IsInline(ref) {
		return []byte(ref), nil
	}
	if s.images == portfolio.ImageStorageInline {
		return imaging.DecodeInline(ref), nil
	}
	path, err := persistInlineImage(ref, s.publicDir, subdir, baseName)
	if err != nil {
		return nil, apperror.NewStorage("Gagal menyimpan gambar.", err)
	}
	return []byte(path), nil
}
