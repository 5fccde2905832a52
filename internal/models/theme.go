package models

// Theme is a purely visual presentation of the shared content
type Theme struct {
	Slug       string     `json:"slug"`
	Name       string     `json:"name"`
	Tagline    string     `json:"tagline"`
	Palette    Palette    `json:"palette"`
	Typography Typography `json:"typography"`
	Motif      string     `json:"motif"` // decorative layer: glow, grain, foil, contour...
	Motion     Motion     `json:"motion"`
	Dark       bool       `json:"dark"`
}

// Palette holds a theme's color scheme
type Palette struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Accent     string `json:"accent"`
	Highlight  string `json:"highlight"`
}

// Typography holds font stacks
type Typography struct {
	Display string `json:"display"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

// Motion holds the scroll-reveal timing for a theme
type Motion struct {
	Easing     string `json:"easing"`      // CSS timing function
	DurationMs int    `json:"duration_ms"` // per element
	StaggerMs  int    `json:"stagger_ms"`  // delay between siblings
}
