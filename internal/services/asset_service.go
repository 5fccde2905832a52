package services

import (
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"folio.studio/internal/assets"
	"folio.studio/internal/models"
)

// AssetService resolves generated images for pages. The manifest is cached
// and reloaded when the file on disk changes.
type AssetService struct {
	root      string
	urlPrefix string

	mu       sync.RWMutex
	manifest *models.Manifest
	modTime  time.Time
}

// NewAssetService creates an AssetService over the asset root. urlPrefix is
// where the root is mounted, e.g. "/assets".
func NewAssetService(root, urlPrefix string) *AssetService {
	return &AssetService{
		root:      root,
		urlPrefix: urlPrefix,
		manifest:  &models.Manifest{Entries: map[string]models.ManifestEntry{}},
	}
}

// Root returns the asset directory
func (s *AssetService) Root() string {
	return s.root
}

// HeroURL returns the URL of a theme's backdrop, if one was generated
func (s *AssetService) HeroURL(theme string) (string, bool) {
	return s.lookup(models.AssetJob{Kind: models.AssetHero, Theme: theme}.Label())
}

// ProjectURL returns the URL of a project's illustration in a theme
func (s *AssetService) ProjectURL(theme, project string) (string, bool) {
	return s.lookup(models.AssetJob{Kind: models.AssetProject, Theme: theme, Project: project}.Label())
}

// Entries returns a snapshot of the manifest entries
func (s *AssetService) Entries() map[string]models.ManifestEntry {
	s.refresh()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.ManifestEntry, len(s.manifest.Entries))
	for k, v := range s.manifest.Entries {
		out[k] = v
	}
	return out
}

func (s *AssetService) lookup(label string) (string, bool) {
	s.refresh()
	s.mu.RLock()
	entry, ok := s.manifest.Entries[label]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	// the manifest can outlive the file it points to
	if _, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(entry.File))); err != nil {
		return "", false
	}
	return path.Join(s.urlPrefix, entry.File), true
}

// refresh reloads the manifest if its modification time changed
func (s *AssetService) refresh() {
	info, err := os.Stat(filepath.Join(s.root, assets.ManifestFile))
	if err != nil {
		return
	}

	s.mu.RLock()
	fresh := info.ModTime().Equal(s.modTime)
	s.mu.RUnlock()
	if fresh {
		return
	}

	m, err := assets.LoadManifest(s.root)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.manifest = m
	s.modTime = info.ModTime()
	s.mu.Unlock()
}
