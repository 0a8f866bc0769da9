package export

import (
	"context"
	"fmt"
	"time"
)

// EntrySource fetches raw time entries for a date range. The Toggl
// client implements this; tests substitute an in-memory source.
type EntrySource interface {
	FetchEntries(ctx context.Context, from, to time.Time) ([]RawEntry, error)
}

// Destination is the issue tracker aggregated entries are submitted to.
// LogTime is not idempotent: submitting the same entry twice creates a
// duplicate log at the tracker.
type Destination interface {
	ListRepositories(ctx context.Context) (RepositoryIndex, error)
	LogTime(ctx context.Context, entry AggregatedEntry) error
}

// Exporter wires an entry source and a destination around the pure
// parse/aggregate pipeline.
type Exporter struct {
	Source      EntrySource
	Destination Destination
}

// Plan fetches the full entry list and the repository index, then runs
// the pipeline. An empty result means no entry in the range matched the
// "#<issue> comment" convention for a known repository; that is a normal
// outcome, not an error.
func (e *Exporter) Plan(ctx context.Context, from, to time.Time) ([]AggregatedEntry, error) {
	raws, err := e.Source.FetchEntries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching time entries: %w", err)
	}

	index, err := e.Destination.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	return Aggregate(ParseAll(raws, index)), nil
}
