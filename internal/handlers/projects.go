package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.studio/internal/services"
)

// ProjectHandler serves the shared project list as JSON
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		h.logger.Debug("Project lookup missed", zap.String("slug", slug))
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, project)
}
