package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.studio/internal/models"
)

func TestManifestRoundTrip(t *testing.T) {
	root := t.TempDir()
	l := Layout{Root: root}

	m, err := LoadManifest(root)
	require.NoError(t, err)
	assert.Empty(t, m.Entries)

	hero := models.AssetJob{Kind: models.AssetHero, Theme: "zen", Path: l.HeroPath("zen")}
	proj := models.AssetJob{Kind: models.AssetProject, Theme: "zen", Project: "watch-auth", Path: l.ProjectPath("zen", "watch-auth")}
	summary := &Summary{
		RunID: "run-1",
		Results: []Result{
			{Job: hero, Outcome: models.OutcomeGenerated, Prompt: "hero prompt"},
			{Job: proj, Outcome: models.OutcomeSkip, Prompt: "skipped"},
		},
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Record(m, l, "openai", summary, now))
	require.NoError(t, SaveManifest(root, m))

	loaded, err := LoadManifest(root)
	require.NoError(t, err)
	require.Contains(t, loaded.Entries, "zen/hero")
	entry := loaded.Entries["zen/hero"]
	assert.Equal(t, "zen/hero.png", entry.File)
	assert.Equal(t, "hero prompt", entry.Prompt)
	assert.Equal(t, "openai", entry.Provider)
	assert.Equal(t, "run-1", entry.RunID)
	assert.True(t, now.Equal(entry.GeneratedAt))
	assert.NotContains(t, loaded.Entries, "zen/watch-auth")
}

func TestLoadManifestInvalid(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFile), []byte("{"), 0644))
	_, err := LoadManifest(root)
	assert.ErrorContains(t, err, "failed to parse")
}
