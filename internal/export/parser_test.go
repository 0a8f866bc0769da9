package export

import (
	"testing"
	"time"
)

func testIndex() RepositoryIndex {
	return RepositoryIndex{
		"acme/widgets": "R1",
		"acme/gears":   "R2",
	}
}

func TestParse_ExtractsIssueAndComment(t *testing.T) {
	raw := RawEntry{
		Client:      "acme",
		Project:     "widgets",
		Description: "#42 fix the thing",
		Start:       time.Date(2026, 8, 17, 14, 30, 12, 500, time.Local),
		DurationMs:  1800000,
	}

	p, ok := Parse(raw, testIndex())
	if !ok {
		t.Fatalf("Parse(%q) rejected, expected a parsed entry", raw.Description)
	}

	if p.Repository != "acme/widgets" {
		t.Errorf("Repository = %q, expected %q", p.Repository, "acme/widgets")
	}
	if p.RepositoryID != "R1" {
		t.Errorf("RepositoryID = %q, expected %q", p.RepositoryID, "R1")
	}
	if p.IssueNumber != "42" {
		t.Errorf("IssueNumber = %q, expected %q", p.IssueNumber, "42")
	}
	if p.Comment != "fix the thing" {
		t.Errorf("Comment = %q, expected %q", p.Comment, "fix the thing")
	}
	if p.DurationMs != 1800000 {
		t.Errorf("DurationMs = %d, expected 1800000", p.DurationMs)
	}
}

func TestParse_TruncatesStartToMidnight(t *testing.T) {
	start := time.Date(2026, 8, 17, 23, 59, 59, 999999999, time.Local)
	raw := RawEntry{Client: "acme", Project: "widgets", Description: "#1 late work", Start: start}

	p, ok := Parse(raw, testIndex())
	if !ok {
		t.Fatal("Parse rejected a valid entry")
	}

	expected := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)
	if !p.Day.Equal(expected) {
		t.Errorf("Day = %v, expected %v", p.Day, expected)
	}
	if h, m, s := p.Day.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("Day has time-of-day %02d:%02d:%02d, expected midnight", h, m, s)
	}
}

func TestParse_DayKeepsEntryTimezone(t *testing.T) {
	// No cross-timezone normalization: the day boundary follows the
	// timestamp's own location. 23:00 in UTC+2 stays Aug 17 even though
	// it is already Aug 18 in UTC+4.
	loc := time.FixedZone("UTC+2", 2*60*60)
	raw := RawEntry{
		Client:      "acme",
		Project:     "widgets",
		Description: "#7 evening work",
		Start:       time.Date(2026, 8, 17, 23, 0, 0, 0, loc),
	}

	p, ok := Parse(raw, testIndex())
	if !ok {
		t.Fatal("Parse rejected a valid entry")
	}

	if p.Day.Day() != 17 {
		t.Errorf("Day = %v, expected it to stay on the 17th in the entry's own timezone", p.Day)
	}
	if p.Day.Location() != loc {
		t.Errorf("Day location = %v, expected %v", p.Day.Location(), loc)
	}
}

func TestParse_PreservesLeadingZeros(t *testing.T) {
	raw := RawEntry{Client: "acme", Project: "widgets", Description: "#007 licence to merge"}

	p, ok := Parse(raw, testIndex())
	if !ok {
		t.Fatal("Parse rejected a valid entry")
	}
	if p.IssueNumber != "007" {
		t.Errorf("IssueNumber = %q, expected %q (digits verbatim, no numeric reinterpretation)", p.IssueNumber, "007")
	}
}

func TestParse_CommentIsVerbatim(t *testing.T) {
	tests := []struct {
		name        string
		description string
		comment     string
	}{
		{"internal whitespace kept", "#5 fix  double  spaces", "fix  double  spaces"},
		{"trailing whitespace kept", "#5 trailing  ", "trailing  "},
		{"extra separator space becomes part of comment", "#5  indented", " indented"},
		{"hash inside comment", "#5 see #6 too", "see #6 too"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawEntry{Client: "acme", Project: "widgets", Description: tt.description}
			p, ok := Parse(raw, testIndex())
			if !ok {
				t.Fatalf("Parse(%q) rejected, expected a parsed entry", tt.description)
			}
			if p.Comment != tt.comment {
				t.Errorf("Comment = %q, expected %q", p.Comment, tt.comment)
			}
		})
	}
}

func TestParse_RejectsMissingTag(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"no tag at all", "just doing stuff"},
		{"empty description", ""},
		{"tag not at start", "fix #42 the thing"},
		{"no digits", "# fix the thing"},
		{"no space after digits", "#42fix"},
		{"digits only", "#42"},
		{"digits and trailing space only", "#42 "},
		{"letters in number", "#4a2 fix"},
		{"tab instead of space", "#42\tfix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawEntry{Client: "acme", Project: "widgets", Description: tt.description}
			if _, ok := Parse(raw, testIndex()); ok {
				t.Errorf("Parse(%q) accepted, expected a silent drop", tt.description)
			}
		})
	}
}

func TestParse_RejectsUnknownRepository(t *testing.T) {
	raw := RawEntry{Client: "unknown", Project: "widgets", Description: "#42 fix the thing"}
	if _, ok := Parse(raw, testIndex()); ok {
		t.Error("Parse accepted an entry whose repository is not in the index")
	}

	// An empty index rejects everything, even well-formed descriptions.
	raw = RawEntry{Client: "acme", Project: "widgets", Description: "#42 fix the thing"}
	if _, ok := Parse(raw, RepositoryIndex{}); ok {
		t.Error("Parse accepted an entry against an empty index")
	}
}

func TestParse_NegativeAndZeroDurationsPassThrough(t *testing.T) {
	// Duration validation is the source system's concern, not the parser's.
	for _, dur := range []int64{0, -60000} {
		raw := RawEntry{Client: "acme", Project: "widgets", Description: "#1 odd duration", DurationMs: dur}
		p, ok := Parse(raw, testIndex())
		if !ok {
			t.Fatalf("Parse rejected entry with duration %d", dur)
		}
		if p.DurationMs != dur {
			t.Errorf("DurationMs = %d, expected %d carried through unchanged", p.DurationMs, dur)
		}
	}
}

func TestParseAll_DropsRejectsSilently(t *testing.T) {
	raws := []RawEntry{
		{Client: "acme", Project: "widgets", Description: "#42 fix the thing"},
		{Client: "acme", Project: "widgets", Description: "standup"},
		{Client: "nobody", Project: "nothing", Description: "#9 orphaned work"},
		{Client: "acme", Project: "gears", Description: "#3 grease bearings"},
	}

	parsed := ParseAll(raws, testIndex())
	if len(parsed) != 2 {
		t.Fatalf("ParseAll returned %d entries, expected 2", len(parsed))
	}
	if parsed[0].IssueNumber != "42" || parsed[1].IssueNumber != "3" {
		t.Errorf("ParseAll kept issues %q and %q, expected 42 and 3", parsed[0].IssueNumber, parsed[1].IssueNumber)
	}
}

func TestParseAll_EmptyInput(t *testing.T) {
	parsed := ParseAll(nil, testIndex())
	if len(parsed) != 0 {
		t.Errorf("ParseAll(nil) returned %d entries, expected 0", len(parsed))
	}
}
