package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"folio.studio/internal/models"
)

// ManifestFile is the index written at the asset root
const ManifestFile = "manifest.json"

// LoadManifest reads the manifest under root. A missing file yields an
// empty manifest.
func LoadManifest(root string) (*models.Manifest, error) {
	m := &models.Manifest{Entries: make(map[string]models.ManifestEntry)}

	data, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}
	if m.Entries == nil {
		m.Entries = make(map[string]models.ManifestEntry)
	}
	return m, nil
}

// Record adds every generated result of a run to the manifest and returns
// the number of entries written
func Record(m *models.Manifest, layout Layout, provider string, summary *Summary, now time.Time) int {
	n := 0
	for _, res := range summary.Results {
		if res.Outcome != models.OutcomeGenerated {
			continue
		}
		m.Entries[res.Job.Label()] = models.ManifestEntry{
			Kind:        res.Job.Kind,
			Theme:       res.Job.Theme,
			Project:     res.Job.Project,
			File:        layout.Rel(res.Job.Path),
			Prompt:      res.Prompt,
			Provider:    provider,
			RunID:       summary.RunID,
			GeneratedAt: now.UTC(),
		}
		n++
	}
	return n
}

// SaveManifest writes the manifest under root
func SaveManifest(root string, m *models.Manifest) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create asset root: %w", err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return writeFile(filepath.Join(root, ManifestFile), data)
}
