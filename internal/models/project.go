package models

// Project represents a portfolio project
type Project struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Client        string   `json:"client"`
	Year          int      `json:"year"`
	Description   string   `json:"description"`
	TechnicalNote string   `json:"technical_note"` // markdown
	Tags          []string `json:"tags"`
	Link          string   `json:"link,omitempty"`
	Image         string   `json:"image"` // filename under the theme's projects/ dir
}

// Stat is a headline figure shown in the hero section
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExpertiseItem is a single area of practice
type ExpertiseItem struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ToolGroup is a labelled, ordered list of tools
type ToolGroup struct {
	Label string   `json:"label"`
	Tools []string `json:"tools"`
}

// Content wraps every piece of site content
type Content struct {
	Owner     string          `json:"owner"`
	Role      string          `json:"role"`
	Intro     string          `json:"intro"`
	Projects  []Project       `json:"projects"`
	Stats     []Stat          `json:"stats"`
	Expertise []ExpertiseItem `json:"expertise"`
	Tools     []ToolGroup     `json:"tools"`
}
