// Package export implements the entry transformation and aggregation
// pipeline: raw Toggl time entries go in, one aggregated entry per
// (repository, issue, comment, day) comes out, ready for review and
// submission to the issue tracker.
package export

import "time"

// RawEntry is a single time entry as reported by Toggl's detailed report.
type RawEntry struct {
	Client      string
	Project     string
	Description string
	Start       time.Time
	DurationMs  int64
}

// Repository returns the tracker repository name for the entry,
// formed as "client/project".
func (r RawEntry) Repository() string {
	return r.Client + "/" + r.Project
}

// RepositoryIndex maps repository names ("client/project") to the
// tracker's repository ids. Built once per run, read-only afterwards.
type RepositoryIndex map[string]string

// ParsedEntry is a raw entry whose description carried an issue tag and
// whose repository resolved against the index.
type ParsedEntry struct {
	Repository   string
	RepositoryID string
	IssueNumber  string
	Comment      string
	Day          time.Time
	DurationMs   int64
}

// AggregatedEntry is the sum of all parsed entries sharing the same
// (repository, issue, comment, day) key.
type AggregatedEntry struct {
	Repository    string
	RepositoryID  string
	IssueNumber   string
	Comment       string
	Day           time.Time
	DurationMs    int64
	DurationLabel string
}
