// Package themes is the ordered registry of visual themes.
package themes

import (
	"folio.studio/internal/models"
)

var (
	serif    = `"Fraunces", "Iowan Old Style", Georgia, serif`
	grotesk  = `"Space Grotesk", "Helvetica Neue", Arial, sans-serif`
	humanist = `"Inter", system-ui, -apple-system, sans-serif`
	mono     = `"JetBrains Mono", "SFMono-Regular", Menlo, monospace`
)

var registry = []models.Theme{
	{
		Slug:       "aurora",
		Name:       "Aurora",
		Tagline:    "Slow green light over a polar night.",
		Palette:    models.Palette{Background: "#060b1a", Surface: "#0f1a33", Text: "#e6f1ff", Muted: "#8aa0c2", Accent: "#4cf2b0", Highlight: "#b48cff"},
		Typography: models.Typography{Display: grotesk, Body: humanist, Mono: mono},
		Motif:      "glow",
		Motion:     models.Motion{Easing: "cubic-bezier(0.22, 1, 0.36, 1)", DurationMs: 1200, StaggerMs: 120},
		Dark:       true,
	},
	{
		Slug:       "risograph",
		Name:       "Risograph",
		Tagline:    "Two drums, slightly out of register.",
		Palette:    models.Palette{Background: "#f6f0e4", Surface: "#fffaf0", Text: "#1d1a6b", Muted: "#5a567f", Accent: "#ff4f7b", Highlight: "#1d8fe1"},
		Typography: models.Typography{Display: grotesk, Body: humanist, Mono: mono},
		Motif:      "misregister",
		Motion:     models.Motion{Easing: "steps(4, end)", DurationMs: 400, StaggerMs: 80},
	},
	{
		Slug:       "holographic",
		Name:       "Holographic",
		Tagline:    "Foil that shifts as you scroll.",
		Palette:    models.Palette{Background: "#f3f4fb", Surface: "#ffffff", Text: "#16161d", Muted: "#6b6b80", Accent: "#a07cff", Highlight: "#5ee7df"},
		Typography: models.Typography{Display: grotesk, Body: humanist, Mono: mono},
		Motif:      "foil",
		Motion:     models.Motion{Easing: "cubic-bezier(0.65, 0, 0.35, 1)", DurationMs: 900, StaggerMs: 90},
	},
	{
		Slug:       "topographic",
		Name:       "Topographic",
		Tagline:    "Contour lines at ten-metre intervals.",
		Palette:    models.Palette{Background: "#eef0e6", Surface: "#f8f9f2", Text: "#2b3024", Muted: "#6f7764", Accent: "#c8642c", Highlight: "#3d7a5a"},
		Typography: models.Typography{Display: serif, Body: humanist, Mono: mono},
		Motif:      "contour",
		Motion:     models.Motion{Easing: "ease-out", DurationMs: 800, StaggerMs: 100},
	},
	{
		Slug:       "zen",
		Name:       "Zen Garden",
		Tagline:    "Raked sand, one stone, nothing more.",
		Palette:    models.Palette{Background: "#ece6da", Surface: "#f5f1e8", Text: "#2f2b25", Muted: "#8a8275", Accent: "#6b7f5e", Highlight: "#a3483a"},
		Typography: models.Typography{Display: serif, Body: serif, Mono: mono},
		Motif:      "raked",
		Motion:     models.Motion{Easing: "cubic-bezier(0.33, 1, 0.68, 1)", DurationMs: 1600, StaggerMs: 200},
	},
	{
		Slug:       "brutalist",
		Name:       "Brutalist",
		Tagline:    "Raw concrete and system fonts.",
		Palette:    models.Palette{Background: "#d9d9d6", Surface: "#ffffff", Text: "#000000", Muted: "#444444", Accent: "#ff3b00", Highlight: "#0000ff"},
		Typography: models.Typography{Display: mono, Body: mono, Mono: mono},
		Motif:      "grid",
		Motion:     models.Motion{Easing: "linear", DurationMs: 150, StaggerMs: 0},
	},
	{
		Slug:       "blueprint",
		Name:       "Blueprint",
		Tagline:    "Drafted in white on cyanotype.",
		Palette:    models.Palette{Background: "#0b3d91", Surface: "#124aa8", Text: "#f2f7ff", Muted: "#a9c1ea", Accent: "#ffffff", Highlight: "#ffd166"},
		Typography: models.Typography{Display: mono, Body: humanist, Mono: mono},
		Motif:      "drafting",
		Motion:     models.Motion{Easing: "ease-in-out", DurationMs: 700, StaggerMs: 60},
		Dark:       true,
	},
	{
		Slug:       "vaporwave",
		Name:       "Vaporwave",
		Tagline:    "Sunset gradients over a wireframe sea.",
		Palette:    models.Palette{Background: "#1a0933", Surface: "#2b0f4c", Text: "#fbe7ff", Muted: "#c79ad6", Accent: "#ff71ce", Highlight: "#01cdfe"},
		Typography: models.Typography{Display: grotesk, Body: humanist, Mono: mono},
		Motif:      "horizon",
		Motion:     models.Motion{Easing: "cubic-bezier(0.34, 1.56, 0.64, 1)", DurationMs: 1000, StaggerMs: 140},
		Dark:       true,
	},
	{
		Slug:       "letterpress",
		Name:       "Letterpress",
		Tagline:    "Deep impression on cotton stock.",
		Palette:    models.Palette{Background: "#f4efe6", Surface: "#fbf8f2", Text: "#231f1a", Muted: "#7a7166", Accent: "#9b2226", Highlight: "#005f73"},
		Typography: models.Typography{Display: serif, Body: serif, Mono: mono},
		Motif:      "deboss",
		Motion:     models.Motion{Easing: "ease-out", DurationMs: 600, StaggerMs: 80},
	},
	{
		Slug:       "terminal",
		Name:       "Terminal",
		Tagline:    "Phosphor green, 80 columns.",
		Palette:    models.Palette{Background: "#050805", Surface: "#0b120b", Text: "#b7ffb7", Muted: "#4f8f4f", Accent: "#39ff14", Highlight: "#ffb000"},
		Typography: models.Typography{Display: mono, Body: mono, Mono: mono},
		Motif:      "scanline",
		Motion:     models.Motion{Easing: "steps(12, end)", DurationMs: 500, StaggerMs: 50},
		Dark:       true,
	},
	{
		Slug:       "botanical",
		Name:       "Botanical",
		Tagline:    "Pressed leaves in a field notebook.",
		Palette:    models.Palette{Background: "#f1f4ea", Surface: "#fafcf5", Text: "#1f2e1f", Muted: "#68795f", Accent: "#2f6f3e", Highlight: "#d98f3b"},
		Typography: models.Typography{Display: serif, Body: humanist, Mono: mono},
		Motif:      "leaf",
		Motion:     models.Motion{Easing: "cubic-bezier(0.25, 1, 0.5, 1)", DurationMs: 1100, StaggerMs: 150},
	},
	{
		Slug:       "noir",
		Name:       "Noir",
		Tagline:    "Venetian-blind shadows at 2 a.m.",
		Palette:    models.Palette{Background: "#0c0c0c", Surface: "#171717", Text: "#ededed", Muted: "#8c8c8c", Accent: "#e0c068", Highlight: "#b3261e"},
		Typography: models.Typography{Display: serif, Body: humanist, Mono: mono},
		Motif:      "blinds",
		Motion:     models.Motion{Easing: "cubic-bezier(0.7, 0, 0.84, 0)", DurationMs: 900, StaggerMs: 110},
		Dark:       true,
	},
	{
		Slug:       "bauhaus",
		Name:       "Bauhaus",
		Tagline:    "Circle, square, triangle. Primary colors only.",
		Palette:    models.Palette{Background: "#f2ede3", Surface: "#ffffff", Text: "#111111", Muted: "#555555", Accent: "#d62828", Highlight: "#1d3557"},
		Typography: models.Typography{Display: grotesk, Body: grotesk, Mono: mono},
		Motif:      "primitives",
		Motion:     models.Motion{Easing: "cubic-bezier(0.87, 0, 0.13, 1)", DurationMs: 700, StaggerMs: 90},
	},
	{
		Slug:       "glacier",
		Name:       "Glacier",
		Tagline:    "Frosted glass over compressed blue ice.",
		Palette:    models.Palette{Background: "#e8f3f8", Surface: "#f6fbfd", Text: "#0e2a3a", Muted: "#5b7b8c", Accent: "#1f8fbf", Highlight: "#8fd3e8"},
		Typography: models.Typography{Display: grotesk, Body: humanist, Mono: mono},
		Motif:      "frost",
		Motion:     models.Motion{Easing: "cubic-bezier(0.16, 1, 0.3, 1)", DurationMs: 1300, StaggerMs: 130},
	},
}

// All returns every theme in switcher order
func All() []models.Theme {
	return registry
}

// Lookup returns the theme with the given slug
func Lookup(slug string) (models.Theme, bool) {
	for _, t := range registry {
		if t.Slug == slug {
			return t, true
		}
	}
	return models.Theme{}, false
}

// Slugs returns theme slugs in switcher order
func Slugs() []string {
	slugs := make([]string, len(registry))
	for i, t := range registry {
		slugs[i] = t.Slug
	}
	return slugs
}

// Neighbors returns the previous and next themes for the switcher, wrapping
// around the ends of the registry
func Neighbors(slug string) (prev, next models.Theme, ok bool) {
	for i, t := range registry {
		if t.Slug != slug {
			continue
		}
		n := len(registry)
		return registry[(i-1+n)%n], registry[(i+1)%n], true
	}
	return models.Theme{}, models.Theme{}, false
}
