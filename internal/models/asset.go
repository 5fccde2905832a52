package models

import "time"

// AssetKind distinguishes theme backdrops from per-project illustrations
type AssetKind string

const (
	AssetHero    AssetKind = "hero"
	AssetProject AssetKind = "project"
)

// AssetJob is one image to produce
type AssetJob struct {
	Kind    AssetKind `json:"kind"`
	Theme   string    `json:"theme"`
	Project string    `json:"project,omitempty"` // empty for hero assets
	Path    string    `json:"path"`              // output file
}

// Label identifies the job in logs and summaries
func (j AssetJob) Label() string {
	if j.Kind == AssetHero {
		return j.Theme + "/hero"
	}
	return j.Theme + "/" + j.Project
}

// Outcome is the result category of a processed job
type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeSkip      Outcome = "skip"
	OutcomeDry       Outcome = "dry"
	OutcomeError     Outcome = "error"
)

// ManifestEntry records a generated asset on disk
type ManifestEntry struct {
	Kind        AssetKind `json:"kind"`
	Theme       string    `json:"theme"`
	Project     string    `json:"project,omitempty"`
	File        string    `json:"file"` // relative to the asset root
	Prompt      string    `json:"prompt"`
	Provider    string    `json:"provider"`
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Manifest is the index of generated assets
type Manifest struct {
	Entries map[string]ManifestEntry `json:"entries"` // keyed by job label
}
