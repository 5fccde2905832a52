package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"folio.studio/internal/assets"
	"folio.studio/internal/config"
	"folio.studio/internal/models"
	"folio.studio/internal/themes"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	cfg := config.Default()
	cfg.AssetsDir = t.TempDir()
	cfg.StaticDir = t.TempDir()
	return SetupRoutes(cfg, zap.NewNop()), cfg.AssetsDir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(t, h, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProjectEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	assert.NotEmpty(t, projects)

	rec = get(t, h, "/api/projects/watch-auth")
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Horologe Verify", p.Title)

	rec = get(t, h, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestThemeEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(t, h, "/api/themes")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Theme
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, len(themes.All()))

	assert.Equal(t, http.StatusOK, get(t, h, "/api/themes/zen").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/themes/sepia").Code)
}

func TestContentEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(t, h, "/api/content")
	require.Equal(t, http.StatusOK, rec.Code)
	var c models.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.NotEmpty(t, c.Stats)
	assert.NotEmpty(t, c.Tools)
}

func TestEveryThemePageRendersSameContent(t *testing.T) {
	h, _ := newTestRouter(t)
	for _, theme := range themes.All() {
		rec := get(t, h, "/themes/"+theme.Slug)
		require.Equal(t, http.StatusOK, rec.Code, theme.Slug)
		body := rec.Body.String()
		assert.Contains(t, body, "Horologe Verify", theme.Slug)
		assert.Contains(t, body, "Applied machine learning", theme.Slug)
		assert.Contains(t, body, theme.Palette.Background, theme.Slug)
		assert.Contains(t, body, "motif-"+theme.Motif, theme.Slug)
		assert.Contains(t, body, "<strong>similarity index</strong>", theme.Slug)
	}
}

func TestThemePageUsesGeneratedAssets(t *testing.T) {
	h, root := newTestRouter(t)

	file := filepath.Join(root, "zen", "projects", "watch-auth.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, os.WriteFile(file, []byte("png"), 0644))
	require.NoError(t, assets.SaveManifest(root, &models.Manifest{Entries: map[string]models.ManifestEntry{
		"zen/watch-auth": {Kind: models.AssetProject, Theme: "zen", Project: "watch-auth", File: "zen/projects/watch-auth.png"},
	}}))

	rec := get(t, h, "/themes/zen")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `src="/assets/zen/projects/watch-auth.png"`)

	img := get(t, h, "/assets/zen/projects/watch-auth.png")
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "png", img.Body.String())
}

func TestIndexAndNotFound(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, slug := range themes.Slugs() {
		assert.Contains(t, rec.Body.String(), `href="/themes/`+slug+`"`)
	}

	rec = get(t, h, "/themes/sepia")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing at /themes/sepia")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/no/such/route").Code)
}

func TestRespondJSONLogsEncodeErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	rec := httptest.NewRecorder()

	respondJSON(rec, zap.New(core), http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	entries := logs.FilterMessage("Failed to encode JSON response").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "unsupported type")
}
