package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestProjectBySlug(t *testing.T) {
	p, ok := ProjectBySlug("watch-auth")
	require.True(t, ok)
	assert.Equal(t, "Horologe Verify", p.Title)
	assert.Same(t, &Default().Projects[0], p)

	_, ok = ProjectBySlug("missing")
	assert.False(t, ok)
}

func TestProjectSlugsFollowDisplayOrder(t *testing.T) {
	slugs := ProjectSlugs()
	require.Len(t, slugs, len(Default().Projects))
	for i, p := range Default().Projects {
		assert.Equal(t, p.Slug, slugs[i])
		assert.Equal(t, p.Slug+".png", p.Image)
	}
}
