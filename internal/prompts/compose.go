// Package prompts builds image-generation prompts from the theme aesthetic
// and project concept tables.
package prompts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrUnknownProject = errors.New("unknown project")
)

const suffix = "Wide 16:9 composition, no text, no logos, no watermarks."

// Compose returns the illustration prompt for a project rendered in a theme.
// The result depends only on the two slugs.
func Compose(theme, project string) (string, error) {
	a, ok := aesthetics[theme]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	c, ok := concepts[project]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProject, project)
	}

	var b strings.Builder
	writeAesthetic(&b, a)
	fmt.Fprintf(&b, " Subject: %s, depicted as %s.", c.Subject, c.Concept)
	b.WriteString(" " + suffix)
	return b.String(), nil
}

// ComposeHero returns the backdrop prompt for a theme's hero section
func ComposeHero(theme string) (string, error) {
	a, ok := aesthetics[theme]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}

	var b strings.Builder
	writeAesthetic(&b, a)
	b.WriteString(" Abstract background with generous negative space for a headline.")
	b.WriteString(" " + suffix)
	return b.String(), nil
}

func writeAesthetic(b *strings.Builder, a Aesthetic) {
	fmt.Fprintf(b, "Style: %s.", a.Style)
	fmt.Fprintf(b, " Color palette: %s.", a.Palette)
	fmt.Fprintf(b, " Mood: %s.", a.Mood)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
