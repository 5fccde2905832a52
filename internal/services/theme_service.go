package services

import (
	"fmt"
	"html/template"

	"folio.studio/internal/models"
	"folio.studio/internal/themes"
)

// ProjectCard is a project as shown in a theme's grid
type ProjectCard struct {
	models.Project
	ImageURL string
	Note     template.HTML
}

// ThemePage is everything a theme template needs
type ThemePage struct {
	Theme    models.Theme
	Prev     models.Theme
	Next     models.Theme
	Themes   []models.Theme
	Content  *models.Content
	HeroURL  string
	Projects []ProjectCard
}

// ThemeService assembles themed pages from the shared content
type ThemeService struct {
	content  *models.Content
	projects *ProjectService
	assets   *AssetService
}

// NewThemeService creates a new ThemeService
func NewThemeService(content *models.Content, ps *ProjectService, as *AssetService) *ThemeService {
	return &ThemeService{content: content, projects: ps, assets: as}
}

// List returns all themes in switcher order
func (s *ThemeService) List() []models.Theme {
	return themes.All()
}

// Get returns a theme by slug
func (s *ThemeService) Get(slug string) (models.Theme, error) {
	theme, ok := themes.Lookup(slug)
	if !ok {
		return models.Theme{}, fmt.Errorf("theme not found: %s", slug)
	}
	return theme, nil
}

// Page builds the view model for a theme route
func (s *ThemeService) Page(slug string) (*ThemePage, error) {
	theme, err := s.Get(slug)
	if err != nil {
		return nil, err
	}
	prev, next, _ := themes.Neighbors(slug)

	page := &ThemePage{
		Theme:    theme,
		Prev:     prev,
		Next:     next,
		Themes:   themes.All(),
		Content:  s.content,
		Projects: make([]ProjectCard, 0, len(s.content.Projects)),
	}
	if url, ok := s.assets.HeroURL(slug); ok {
		page.HeroURL = url
	}

	for i := range s.content.Projects {
		p := &s.content.Projects[i]
		note, err := s.projects.RenderNote(p)
		if err != nil {
			return nil, err
		}
		card := ProjectCard{Project: *p, Note: note}
		if url, ok := s.assets.ProjectURL(slug, p.Slug); ok {
			card.ImageURL = url
		}
		page.Projects = append(page.Projects, card)
	}
	return page, nil
}
