package export

import (
	"regexp"
	"time"
)

// issueTagPattern matches descriptions that start with an issue tag:
// a '#', one or more digits, exactly one space, then the comment text.
// The digits are captured verbatim (leading zeros preserved) because
// issue numbers are compared and displayed as text, never as numbers.
var issueTagPattern = regexp.MustCompile(`^#(\d+) (.+)$`)

// Parse maps one raw entry to a ParsedEntry. It returns false when the
// description carries no issue tag, or when the entry's "client/project"
// repository is not present in the index. Both cases are expected noise
// (user-authored free text), not errors.
//
// An entry whose repository name looks valid but has no resolvable id is
// dropped rather than passed through with an empty id: a submission
// without a repository id can only fail at the tracker.
func Parse(raw RawEntry, index RepositoryIndex) (ParsedEntry, bool) {
	matches := issueTagPattern.FindStringSubmatch(raw.Description)
	if matches == nil {
		return ParsedEntry{}, false
	}

	repository := raw.Repository()
	id, ok := index[repository]
	if !ok {
		return ParsedEntry{}, false
	}

	return ParsedEntry{
		Repository:   repository,
		RepositoryID: id,
		IssueNumber:  matches[1],
		Comment:      matches[2],
		Day:          dayOf(raw.Start),
		DurationMs:   raw.DurationMs,
	}, true
}

// ParseAll applies Parse to every raw entry and drops the rejects.
func ParseAll(raws []RawEntry, index RepositoryIndex) []ParsedEntry {
	parsed := make([]ParsedEntry, 0, len(raws))
	for _, raw := range raws {
		if p, ok := Parse(raw, index); ok {
			parsed = append(parsed, p)
		}
	}
	return parsed
}

// dayOf truncates a timestamp to midnight in the timezone the timestamp
// itself is interpreted in. Entries from different timezones are not
// normalized against each other; day boundaries follow each entry's own
// clock.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
