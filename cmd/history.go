package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalableminds/toggl-export/internal/cli"
	"github.com/scalableminds/toggl-export/internal/storage"
)

var historyLimitFlag int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously submitted entries",
	Long: `Show entries submitted by earlier export runs, newest first.

The history is a local record only; it is never used to deduplicate new
submissions. Re-running an export over an overlapping date range submits
duplicates regardless of what the history contains.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showHistory()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "maximum number of submissions to show")
}

// showHistory lists the most recent submissions from the local log
func showHistory() {
	logPath, err := deps.LogPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine submission log location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	result, err := storage.ReadSubmissionsWithWarnings(logPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read the submission log")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the log file is readable: %s\n", logPath)
		deps.Exit(1)
		return
	}

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted line(s) in the submission log:\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			content := warning.Content
			if len(content) > 50 {
				content = content[:47] + "..."
			}
			_, _ = fmt.Fprintf(deps.Stderr, "  Line %d: %s (error: %s)\n", warning.LineNumber, content, warning.Error)
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}

	submissions := result.Submissions
	if len(submissions) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No submissions recorded yet")
		return
	}

	shown := len(submissions)
	if historyLimitFlag > 0 && shown > historyLimitFlag {
		shown = historyLimitFlag
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Last %d of %d %s:\n", shown, len(submissions), cli.Pluralize("submission", len(submissions)))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	// The log is append-ordered; walk backwards for newest first.
	for i := len(submissions) - 1; i >= len(submissions)-shown; i-- {
		s := submissions[i]
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s #%s  %s (%s) for %s\n",
			s.SubmittedAt.Format("2006-01-02 15:04"),
			s.Repository,
			s.IssueNumber,
			s.Comment,
			s.DurationLabel,
			cli.FormatDay(s.Day))
	}
}
