package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/scalableminds/toggl-export/internal/export"
)

func aggregated(repo, issue, comment string, day time.Time, ms int64) export.AggregatedEntry {
	return export.AggregatedEntry{
		Repository:    repo,
		RepositoryID:  "R1",
		IssueNumber:   issue,
		Comment:       comment,
		Day:           day,
		DurationMs:    ms,
		DurationLabel: export.FormatDuration(ms),
	}
}

func TestRenderPlan_GroupsByDayWithTotals(t *testing.T) {
	tuesday := time.Date(2026, 8, 18, 0, 0, 0, 0, time.Local)
	monday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)

	// Aggregate order: newest day first.
	entries := []export.AggregatedEntry{
		aggregated("acme/widgets", "42", "fix the thing", tuesday, 5400000),
		aggregated("acme/gears", "3", "grease bearings", monday, 1800000),
		aggregated("acme/widgets", "7", "review", monday, 1800000),
	}

	out := &bytes.Buffer{}
	RenderPlan(out, entries, DefaultStyles())
	output := out.String()

	tuesdayIdx := strings.Index(output, "Tue, Aug 18, 2026")
	mondayIdx := strings.Index(output, "Mon, Aug 17, 2026")
	if tuesdayIdx == -1 || mondayIdx == -1 {
		t.Fatalf("output missing day headers:\n%s", output)
	}
	if tuesdayIdx > mondayIdx {
		t.Errorf("expected newest day first, got:\n%s", output)
	}

	for _, want := range []string{
		"acme/widgets #42  fix the thing (1h 30m)",
		"acme/gears #3  grease bearings (0h 30m)",
		"day total: 1h 30m",
		"day total: 1h 00m",
		"Total: 2h 30m across 3 entries",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderPlan_EmptyPlanRendersNothing(t *testing.T) {
	out := &bytes.Buffer{}
	RenderPlan(out, nil, DefaultStyles())
	if out.Len() != 0 {
		t.Errorf("expected no output for an empty plan, got:\n%s", out.String())
	}
}

func TestRenderPlan_SingleEntry(t *testing.T) {
	monday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)
	out := &bytes.Buffer{}
	RenderPlan(out, []export.AggregatedEntry{
		aggregated("acme/widgets", "42", "fix the thing", monday, 3600000),
	}, DefaultStyles())

	if !strings.Contains(out.String(), "Total: 1h 00m across 1 entry") {
		t.Errorf("expected singular total line, got:\n%s", out.String())
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		word     string
		count    int
		expected string
	}{
		{"entry", 1, "entry"},
		{"entry", 2, "entries"},
		{"submission", 1, "submission"},
		{"submission", 3, "submissions"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.word, tt.count); got != tt.expected {
			t.Errorf("Pluralize(%q, %d) = %q, expected %q", tt.word, tt.count, got, tt.expected)
		}
	}
}

func TestFormatDay(t *testing.T) {
	day := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)
	if got := FormatDay(day); got != "Mon, Aug 17, 2026" {
		t.Errorf("FormatDay = %q, expected %q", got, "Mon, Aug 17, 2026")
	}
}
