package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.studio/internal/config"
	"folio.studio/internal/content"
	"folio.studio/internal/middleware"
	"folio.studio/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	site := content.Default()
	assetService := services.NewAssetService(cfg.AssetsDir, "/assets")
	projectService := services.NewProjectService(site)
	themeService := services.NewThemeService(site, projectService, assetService)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, logger)
	themeHandler := NewThemeHandler(themeService, logger)
	pageHandler := NewPageHandler(themeService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/content", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, site)
		})

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Theme endpoints
		r.Get("/themes", themeHandler.ListThemes)
		r.Get("/themes/{slug}", themeHandler.GetTheme)
		r.Get("/assets", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, assetService.Entries())
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Themed pages
	r.Get("/", pageHandler.Index)
	r.Get("/themes/{slug}", pageHandler.Theme)
	r.NotFound(pageHandler.NotFound)

	// Generated images
	assetServer := http.FileServer(http.Dir(cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets", assetServer))

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Int("status", status), zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
