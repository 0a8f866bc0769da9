// Package cli provides the presentation layer for toggl-export: the
// export plan rendering and shared formatting helpers.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/scalableminds/toggl-export/internal/export"
)

// Styles contains the lipgloss styles used for console output.
type Styles struct {
	DayHeader  lipgloss.Style
	Repository lipgloss.Style
	Issue      lipgloss.Style
	Comment    lipgloss.Style
	Duration   lipgloss.Style
	Total      lipgloss.Style
}

// DefaultStyles returns the default console styles. lipgloss degrades to
// plain text when stdout is not a terminal, so the rendered content is
// identical with or without color.
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")   // Purple
	secondary := lipgloss.Color("39") // Cyan
	accent := lipgloss.Color("212")   // Pink
	highlight := lipgloss.Color("82") // Green

	return Styles{
		DayHeader:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		Repository: lipgloss.NewStyle().Foreground(secondary),
		Issue:      lipgloss.NewStyle().Foreground(accent),
		Comment:    lipgloss.NewStyle(),
		Duration:   lipgloss.NewStyle().Foreground(highlight),
		Total:      lipgloss.NewStyle().Bold(true),
	}
}

// FormatDay formats a day bucket for display.
func FormatDay(day time.Time) string {
	return day.Format("Mon, Jan 2, 2006")
}

// RenderPlan writes the aggregated export plan grouped by day, newest
// day first (the order Aggregate produces). Each day closes with its
// subtotal; the plan closes with the grand total.
func RenderPlan(w io.Writer, entries []export.AggregatedEntry, styles Styles) {
	var currentDay time.Time
	var dayTotal, grandTotal int64
	started := false

	flushDayTotal := func() {
		_, _ = fmt.Fprintf(w, "  %s\n\n", styles.Duration.Render(fmt.Sprintf("day total: %s", export.FormatDuration(dayTotal))))
	}

	for _, e := range entries {
		if !started || !e.Day.Equal(currentDay) {
			if started {
				flushDayTotal()
			}
			currentDay = e.Day
			dayTotal = 0
			started = true
			_, _ = fmt.Fprintf(w, "%s\n", styles.DayHeader.Render(FormatDay(e.Day)))
		}

		_, _ = fmt.Fprintf(w, "  %s %s  %s (%s)\n",
			styles.Repository.Render(e.Repository),
			styles.Issue.Render("#"+e.IssueNumber),
			styles.Comment.Render(e.Comment),
			styles.Duration.Render(e.DurationLabel))

		dayTotal += e.DurationMs
		grandTotal += e.DurationMs
	}

	if started {
		flushDayTotal()
		_, _ = fmt.Fprintf(w, "%s\n",
			styles.Total.Render(fmt.Sprintf("Total: %s across %d %s",
				export.FormatDuration(grandTotal), len(entries), Pluralize("entry", len(entries)))))
	}
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if word == "entry" {
		return "entries"
	}
	return word + "s"
}
