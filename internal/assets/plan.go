// Package assets plans, generates and indexes themed illustration assets.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"folio.studio/internal/content"
	"folio.studio/internal/models"
	"folio.studio/internal/themes"
)

// ErrEmptySelection is returned when the flags select nothing
var ErrEmptySelection = errors.New("nothing selected")

// Layout maps jobs to files under the asset root
type Layout struct {
	Root string
}

// HeroPath returns the backdrop file for a theme
func (l Layout) HeroPath(theme string) string {
	return filepath.Join(l.Root, theme, "hero.png")
}

// ProjectPath returns the illustration file for a project in a theme
func (l Layout) ProjectPath(theme, project string) string {
	return filepath.Join(l.Root, theme, "projects", project+".png")
}

// Rel returns path relative to the root, slash-separated for URLs
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Selection is what the operator asked for on the command line
type Selection struct {
	Theme      string
	Project    string
	Projects   bool // project illustrations only, every project
	All        bool // every theme
	HeroesOnly bool
}

// Plan expands a selection into an ordered job list: theme by theme, the hero
// first, then projects in display order. Unknown slugs are configuration
// errors.
func Plan(layout Layout, sel Selection) ([]models.AssetJob, error) {
	themeSlugs, err := selectThemes(sel)
	if err != nil {
		return nil, err
	}

	var projectSlugs []string
	includeHero := true
	switch {
	case sel.HeroesOnly:
	case sel.Project != "":
		if _, ok := content.ProjectBySlug(sel.Project); !ok {
			return nil, fmt.Errorf("unknown project %q", sel.Project)
		}
		projectSlugs = []string{sel.Project}
		includeHero = false
	case sel.Projects:
		projectSlugs = content.ProjectSlugs()
		includeHero = false
	default:
		projectSlugs = content.ProjectSlugs()
	}

	jobs := make([]models.AssetJob, 0, len(themeSlugs)*(len(projectSlugs)+1))
	for _, theme := range themeSlugs {
		if includeHero {
			jobs = append(jobs, models.AssetJob{
				Kind:  models.AssetHero,
				Theme: theme,
				Path:  layout.HeroPath(theme),
			})
		}
		for _, project := range projectSlugs {
			jobs = append(jobs, models.AssetJob{
				Kind:    models.AssetProject,
				Theme:   theme,
				Project: project,
				Path:    layout.ProjectPath(theme, project),
			})
		}
	}
	return jobs, nil
}

func selectThemes(sel Selection) ([]string, error) {
	switch {
	case sel.All:
		return themes.Slugs(), nil
	case sel.Theme != "":
		if _, ok := themes.Lookup(sel.Theme); !ok {
			return nil, fmt.Errorf("unknown theme %q", sel.Theme)
		}
		return []string{sel.Theme}, nil
	case sel.Project != "" && !sel.HeroesOnly:
		return themes.Slugs(), nil
	case sel.HeroesOnly:
		return nil, fmt.Errorf("%w: pass --theme or --all", ErrEmptySelection)
	}
	return nil, fmt.Errorf("%w: pass --theme, --project or --all", ErrEmptySelection)
}
