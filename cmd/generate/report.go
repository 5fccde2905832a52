package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"folio.studio/internal/assets"
	"folio.studio/internal/models"
)

var styles = struct {
	wave, label, prompt, title lipgloss.Style
	outcome                    map[models.Outcome]lipgloss.Style
}{
	wave:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8aa0c2")),
	label:  lipgloss.NewStyle().Bold(true),
	prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3")).PaddingLeft(2),
	title:  lipgloss.NewStyle().Bold(true).Underline(true),
	outcome: map[models.Outcome]lipgloss.Style{
		models.OutcomeGenerated: lipgloss.NewStyle().Foreground(lipgloss.Color("#4cf2b0")),
		models.OutcomeSkip:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8c8c8c")),
		models.OutcomeDry:       lipgloss.NewStyle().Foreground(lipgloss.Color("#01cdfe")),
		models.OutcomeError:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3b00")).Bold(true),
	},
}

var outcomeOrder = []models.Outcome{
	models.OutcomeGenerated,
	models.OutcomeSkip,
	models.OutcomeDry,
	models.OutcomeError,
}

func printPrompts(w io.Writer, s *assets.Summary) {
	for _, r := range s.Results {
		if r.Outcome != models.OutcomeDry {
			continue
		}
		fmt.Fprintf(w, "%s -> %s\n", styles.label.Render(r.Job.Label()), r.Job.Path)
		fmt.Fprintln(w, styles.prompt.Render(r.Prompt))
	}
}

func printSummary(w io.Writer, s *assets.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.title.Render("Summary"))

	parts := make([]string, 0, len(outcomeOrder))
	for _, o := range outcomeOrder {
		if n := s.Counts[o]; n > 0 {
			parts = append(parts, styles.outcome[o].Render(fmt.Sprintf("%s %d", o, n)))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}
	fmt.Fprintf(w, "%s  (%d waves, %s, run %s)\n", strings.Join(parts, "  "), s.Waves, s.Duration.Round(time.Millisecond), s.RunID)

	for _, r := range s.Results {
		if r.Outcome == models.OutcomeError {
			fmt.Fprintf(w, "  %s %s: %v\n", styles.outcome[models.OutcomeError].Render("✗"), r.Job.Label(), r.Err)
		}
	}
}
