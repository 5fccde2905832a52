package prompts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.studio/internal/content"
	"folio.studio/internal/themes"
)

func TestComposeAuroraWatchAuth(t *testing.T) {
	prompt, err := Compose("aurora", "watch-auth")
	require.NoError(t, err)
	assert.Contains(t, prompt, "luxury watch authentication")
	assert.Contains(t, prompt, "cosmic northern lights")
}

func TestComposeEveryPair(t *testing.T) {
	for theme, a := range aesthetics {
		for project, c := range concepts {
			prompt, err := Compose(theme, project)
			require.NoError(t, err, "%s/%s", theme, project)
			assert.Contains(t, prompt, c.Subject)
			assert.Contains(t, prompt, a.Palette)
			assert.Contains(t, prompt, a.Style)
		}
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	first, err := Compose("zen", "museum-echo")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compose("zen", "museum-echo")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComposeUnknownSlugs(t *testing.T) {
	_, err := Compose("sepia", "watch-auth")
	assert.True(t, errors.Is(err, ErrUnknownTheme))

	_, err = Compose("aurora", "time-machine")
	assert.True(t, errors.Is(err, ErrUnknownProject))

	_, err = ComposeHero("sepia")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
}

func TestComposeHero(t *testing.T) {
	prompt, err := ComposeHero("risograph")
	require.NoError(t, err)
	assert.Contains(t, prompt, aesthetics["risograph"].Style)
	for _, c := range concepts {
		assert.NotContains(t, prompt, c.Subject)
	}
}

func TestTablesCoverSiteData(t *testing.T) {
	assert.ElementsMatch(t, themes.Slugs(), Themes())
	assert.ElementsMatch(t, content.ProjectSlugs(), Projects())
}
