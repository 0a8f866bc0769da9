package export

import (
	"fmt"
	"math"
	"sort"
)

// groupKey identifies one aggregation bucket. A struct key gives
// structural equality on all four components; a joined string could
// falsely merge or split groups when a comment contains the separator.
// The day is reduced to its date string so equality matches the
// truncated-to-midnight granularity the parser established.
type groupKey struct {
	repository  string
	issueNumber string
	comment     string
	day         string
}

// Aggregate merges parsed entries sharing the same (repository, issue,
// comment, day) key into one entry with the summed duration and a
// display label. Comments are matched verbatim: differing capitalization
// or trailing whitespace are different groups.
//
// The result is sorted newest day first, then by repository, issue and
// comment, so repeated runs over the same input render identically.
// Empty input yields an empty slice.
func Aggregate(parsed []ParsedEntry) []AggregatedEntry {
	groups := make(map[groupKey]*AggregatedEntry)

	for _, p := range parsed {
		key := groupKey{
			repository:  p.Repository,
			issueNumber: p.IssueNumber,
			comment:     p.Comment,
			day:         p.Day.Format("2006-01-02"),
		}
		if g, ok := groups[key]; ok {
			g.DurationMs += p.DurationMs
			continue
		}
		groups[key] = &AggregatedEntry{
			Repository:   p.Repository,
			RepositoryID: p.RepositoryID,
			IssueNumber:  p.IssueNumber,
			Comment:      p.Comment,
			Day:          p.Day,
			DurationMs:   p.DurationMs,
		}
	}

	result := make([]AggregatedEntry, 0, len(groups))
	for _, g := range groups {
		g.DurationLabel = FormatDuration(g.DurationMs)
		result = append(result, *g)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Day.Equal(result[j].Day) {
			return result[i].Day.After(result[j].Day)
		}
		if result[i].Repository != result[j].Repository {
			return result[i].Repository < result[j].Repository
		}
		if result[i].IssueNumber != result[j].IssueNumber {
			return result[i].IssueNumber < result[j].IssueNumber
		}
		return result[i].Comment < result[j].Comment
	})

	return result
}

// FormatDuration renders milliseconds as "<H>h <MM>m". Minutes are
// rounded, not truncated: 59.5 seconds reads as one minute. Hours are
// unpadded, minutes always two digits.
func FormatDuration(ms int64) string {
	totalMinutes := int64(math.Round(float64(ms) / 60000))
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
