package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"folio.studio/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	content *models.Content
	md      goldmark.Markdown
}

// NewProjectService creates a new ProjectService
func NewProjectService(content *models.Content) *ProjectService {
	return &ProjectService{content: content, md: goldmark.New()}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.content.Projects
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	for i := range s.content.Projects {
		if s.content.Projects[i].Slug == slug {
			return &s.content.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", slug)
}

// RenderNote converts a project's markdown technical note to HTML. goldmark
// drops raw HTML by default, so the output is safe to embed.
func (s *ProjectService) RenderNote(p *models.Project) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(p.TechnicalNote), &buf); err != nil {
		return "", fmt.Errorf("render note for %s: %w", p.Slug, err)
	}
	return template.HTML(buf.String()), nil
}
