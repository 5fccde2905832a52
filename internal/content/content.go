// Package content holds the portfolio's hand-authored data. Every theme
// renders the same value; nothing here is mutated after package init.
package content

import (
	"folio.studio/internal/models"
)

var site = models.Content{
	Owner: "Ines Marlowe",
	Role:  "Product engineer & interface designer",
	Intro: "I build precise, quiet software for companies that sell things people care about deeply.",
	Projects: []models.Project{
		{
			Slug:          "watch-auth",
			Title:         "Horologe Verify",
			Client:        "Maison Lumen",
			Year:          2024,
			Description:   "An authentication service for pre-owned luxury watches that pairs macro photography with movement acoustics.",
			TechnicalNote: "Capture runs on-device; a **similarity index** over 40k reference calibers flags counterfeit bridges and dials in under two seconds.",
			Tags:          []string{"Go", "Computer Vision", "gRPC", "SwiftUI"},
			Link:          "https://example.com/horologe",
			Image:         "watch-auth.png",
		},
		{
			Slug:          "freight-pulse",
			Title:         "Freight Pulse",
			Client:        "Northbound Logistics",
			Year:          2023,
			Description:   "Live telemetry for a refrigerated trucking fleet: temperature, dwell time and route drift on one screen.",
			TechnicalNote: "Sensor frames stream over MQTT into a columnar store; the dashboard renders **12k points/s** without dropping frames.",
			Tags:          []string{"TypeScript", "MQTT", "ClickHouse", "WebGL"},
			Link:          "https://example.com/freight-pulse",
			Image:         "freight-pulse.png",
		},
		{
			Slug:          "vineyard-atlas",
			Title:         "Vineyard Atlas",
			Client:        "Côte Collective",
			Year:          2023,
			Description:   "Row-by-row vigor maps for small wineries built from drone imagery and soil probes.",
			TechnicalNote: "NDVI tiles are computed per flight and diffed against the previous harvest so growers see change, not noise.",
			Tags:          []string{"Python", "GDAL", "PostGIS", "Mapbox"},
			Link:          "https://example.com/vineyard-atlas",
			Image:         "vineyard-atlas.png",
		},
		{
			Slug:          "signal-choir",
			Title:         "Signal Choir",
			Client:        "Open Rehearsal",
			Year:          2022,
			Description:   "Low-latency rehearsal rooms for distributed choirs, with per-voice mixing and score following.",
			TechnicalNote: "WebRTC mesh with a jitter buffer tuned per singer; score position is inferred from pitch tracking.",
			Tags:          []string{"WebRTC", "Rust", "WASM", "Web Audio"},
			Link:          "https://example.com/signal-choir",
			Image:         "signal-choir.png",
		},
		{
			Slug:          "ledger-garden",
			Title:         "Ledger Garden",
			Client:        "Sprout Bank",
			Year:          2022,
			Description:   "A savings app where each goal grows as a plant, tended by round-ups and recurring deposits.",
			TechnicalNote: "Growth curves are derived from the goal's funding rate so the garden never lies about progress.",
			Tags:          []string{"Kotlin", "Go", "PostgreSQL", "Lottie"},
			Link:          "https://example.com/ledger-garden",
			Image:         "ledger-garden.png",
		},
		{
			Slug:          "museum-echo",
			Title:         "Museum Echo",
			Client:        "Hallward Museum of Craft",
			Year:          2021,
			Description:   "An audio-first gallery guide that knows which object you are standing in front of.",
			TechnicalNote: "BLE beacons and a small HMM smooth position estimates; narration is prefetched one room ahead.",
			Tags:          []string{"Swift", "BLE", "Node.js", "CMS"},
			Link:          "https://example.com/museum-echo",
			Image:         "museum-echo.png",
		},
	},
	Stats: []models.Stat{
		{Label: "Years shipping", Value: "11"},
		{Label: "Products launched", Value: "27"},
		{Label: "Countries served", Value: "14"},
		{Label: "Coffee, daily", Value: "∞"},
	},
	Expertise: []models.ExpertiseItem{
		{
			Title: "Product engineering",
			Body:  "From first prototype to production hardening: APIs, data pipelines and the interfaces that sit on top of them.",
		},
		{
			Title: "Interface design",
			Body:  "Typography-led layouts, motion that explains state, and design systems teams actually keep using.",
		},
		{
			Title: "Applied machine learning",
			Body:  "Vision and signal models sized for the device they run on, with evaluation harnesses that catch regressions early.",
		},
		{
			Title: "Technical direction",
			Body:  "Scoping, architecture reviews and hiring for small teams that need to move quickly without breaking trust.",
		},
	},
	Tools: []models.ToolGroup{
		{Label: "Languages", Tools: []string{"Go", "TypeScript", "Rust", "Swift", "Python"}},
		{Label: "Frontend", Tools: []string{"React", "Svelte", "WebGL", "Framer Motion"}},
		{Label: "Infrastructure", Tools: []string{"PostgreSQL", "ClickHouse", "Kubernetes", "Terraform"}},
		{Label: "Design", Tools: []string{"Figma", "Blender", "After Effects"}},
	},
}

// Default returns the shared site content. Callers must treat it as read-only.
func Default() *models.Content {
	return &site
}

// ProjectBySlug returns the project with the given slug
func ProjectBySlug(slug string) (*models.Project, bool) {
	for i := range site.Projects {
		if site.Projects[i].Slug == slug {
			return &site.Projects[i], true
		}
	}
	return nil, false
}

// ProjectSlugs returns project slugs in display order
func ProjectSlugs() []string {
	slugs := make([]string, len(site.Projects))
	for i, p := range site.Projects {
		slugs[i] = p.Slug
	}
	return slugs
}
