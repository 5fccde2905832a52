package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.studio/internal/services"
)

// ThemeHandler serves theme metadata as JSON
type ThemeHandler struct {
	themeService *services.ThemeService
	logger       *zap.Logger
}

// NewThemeHandler creates a new ThemeHandler
func NewThemeHandler(ts *services.ThemeService, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{themeService: ts, logger: logger}
}

// ListThemes handles GET /api/themes
func (h *ThemeHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.themeService.List())
}

// GetTheme handles GET /api/themes/{slug}
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themeService.Get(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Theme not found")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, theme)
}
