package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.studio/internal/models"
	"folio.studio/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"css": func(s string) template.CSS { return template.CSS(s) },
}).ParseFS(templateFS, "templates/*.html"))

// PageHandler renders the themed HTML routes
type PageHandler struct {
	themeService *services.ThemeService
	logger       *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ts *services.ThemeService, logger *zap.Logger) *PageHandler {
	return &PageHandler{themeService: ts, logger: logger}
}

// Index handles GET / - the theme switcher grid
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "index.html", struct {
		Themes []models.Theme
	}{h.themeService.List()})
}

// Theme handles GET /themes/{slug}
func (h *PageHandler) Theme(w http.ResponseWriter, r *http.Request) {
	page, err := h.themeService.Page(chi.URLParam(r, "slug"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.render(w, http.StatusOK, "theme.html", page)
}

// NotFound renders the 404 page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "notfound.html", struct {
		Path   string
		Themes []models.Theme
	}{r.URL.Path, h.themeService.List()})
}

// render executes into a buffer first so a template error never produces a
// half-written page
func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
