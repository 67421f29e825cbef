package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaluhWikri/Portofolio-Galuh/adapters/github"
	"github.com/GaluhWikri/Portofolio-Galuh/adapters/media_storage"
	"github.com/GaluhWikri/Portofolio-Galuh/adapters/persistence"
	mediaUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/media"
	portfolioUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/portfolio"
	statsUC "github.com/GaluhWikri/Portofolio-Galuh/internal/application/usecase/stats"
	"github.com/GaluhWikri/Portofolio-Galuh/internal/config"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

// newTestRouter wires the API in file mode against temp directories,
// matching the composition in cmd/server.
func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	log := logger.NewNop()
	var cfg config.Config
	cfg.Storage.DataFile = filepath.Join(dir, "data.json")
	cfg.Storage.PublicDir = filepath.Join(dir, "public")
	cfg.Storage.UploadDir = filepath.Join(dir, "public", "uploads")
	cfg.Storage.IconsDir = filepath.Join(dir, "public", "assets", "icon")

	store := persistence.NewFilePortfolioStore(cfg.Storage.DataFile, cfg.Storage.PublicDir, log)
	uploader := media_storage.NewLocalDiskAdapter(cfg)

	portfolioHandler := NewPortfolioHandler(
		portfolioUC.NewGetPortfolioUseCase(store),
		portfolioUC.NewSavePortfolioUseCase(store, nil, log),
		log,
	)
	mediaHandler := NewMediaHandler(mediaUC.NewUploadMediaUseCase(uploader, nil, log), log)
	iconsHandler := NewIconsHandler(cfg.Storage.IconsDir, log)

	router := gin.New()
	api := router.Group("/api")
	api.Use(ErrorMiddleware(log))
	api.GET("/data", portfolioHandler.GetData)
	api.POST("/data", portfolioHandler.SaveData)
	api.POST("/upload", mediaHandler.Upload)
	api.GET("/icons", iconsHandler.List)

	return router, dir
}

func TestGetDataMissingFileReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "tidak ditemukan")
}

func TestSaveThenGetDataRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{
		"aboutMe": "Halo!",
		"education": {"university": "UI", "major": "Informatika", "period": "2020 - 2024"},
		"tools": [{"name": "Git", "icon": "/assets/icon/git.png"}],
		"projects": [{"title": "Portfolio", "tech": ["Next.js", "Go"], "imgSrc": ""}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Data berhasil disimpan!")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc PortfolioDocumentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Halo!", doc.AboutMe)
	assert.Equal(t, "UI", doc.Education.University)
	require.Len(t, doc.Tools, 1)
	assert.Equal(t, "Git", doc.Tools[0].Name)
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, []string{"Next.js", "Go"}, doc.Projects[0].Tech)
}

func TestGetDataEmptyDocumentDefaults(t *testing.T) {
	router, dir := newTestRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(`{}`), 0o644))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{
		"aboutMe": "",
		"education": {"university": "", "major": "", "period": ""},
		"tools": [],
		"projects": []
	}`, w.Body.String())
}

func multipartBody(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadWithoutFileReturns400(t *testing.T) {
	router, dir := newTestRouter(t)

	body, contentType := multipartBody(t, "", "", nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "File tidak ditemukan di dalam request."}`, w.Body.String())

	// Nothing may be written on the client-error path.
	_, err := os.Stat(filepath.Join(dir, "public", "uploads"))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadStoresFileAndReturnsPath(t *testing.T) {
	router, dir := newTestRouter(t)

	payload := []byte{0x89, 0x50, 0x4E, 0x47, 0xAA}
	body, contentType := multipartBody(t, "file", "git logo.png", payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.Path, "git_logo.png"))

	onDisk, err := os.ReadFile(filepath.Join(dir, "public", filepath.FromSlash(resp.Path)))
	require.NoError(t, err)
	assert.Equal(t, payload, onDisk)
}

func TestListIconsFiltersByExtension(t *testing.T) {
	router, dir := newTestRouter(t)

	iconsDir := filepath.Join(dir, "public", "assets", "icon")
	require.NoError(t, os.MkdirAll(iconsDir, 0o755))
	for _, name := range []string{"git.png", "go.SVG", "readme.txt", ".DS_Store"} {
		require.NoError(t, os.WriteFile(filepath.Join(iconsDir, name), []byte("x"), 0o644))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/icons", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp IconsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"git.png", "go.SVG"}, resp.Icons)
}

func TestListIconsMissingDirReturns500(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/icons", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Direktori ikon")
}

func TestGitHubStatsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octo":
			fmt.Fprint(w, `{"public_repos": 5}`)
		case "/users/octo/repos":
			fmt.Fprint(w, `[]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	client := github.NewClientWithBaseURL(upstream.URL, "octo", "", log)
	handler := NewStatsHandler(statsUC.NewGitHubStatsUseCase(client, nil, log), log)

	router := gin.New()
	router.Use(ErrorMiddleware(log))
	router.GET("/api/github", handler.GetGitHubStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/github", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{
		"publicRepos": 5,
		"commits": 0,
		"pullRequests": 71,
		"issues": 3,
		"contributedTo": 7
	}`, w.Body.String())
}
