package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scalableminds/toggl-export/internal/cli"
	"github.com/scalableminds/toggl-export/internal/config"
	"github.com/scalableminds/toggl-export/internal/export"
	"github.com/scalableminds/toggl-export/internal/storage"
	"github.com/scalableminds/toggl-export/internal/timeutil"
)

var (
	fromFlag        string
	toFlag          string
	yesFlag         bool
	dryRunFlag      bool
	interactiveFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "toggl-export",
	Short: "Export Toggl time entries to the issue tracker",
	Long: `toggl-export fetches your Toggl time entries, matches them to tracker
issues, and submits one aggregated time log per issue per day.

Only entries whose description starts with an issue tag are exported:

  #<issue number> <comment>        e.g. "#42 fix the thing"

The entry's Toggl client and project must form a repository known to the
tracker ("client/project"); everything else is silently skipped. Entries
sharing the same repository, issue, comment and day are merged into one
submission.

Without flags the current week (Monday through today) is exported.
Re-running over an overlapping range submits duplicates; the tool does
not deduplicate against earlier runs.

Examples:
  toggl-export                          Export the current week
  toggl-export --from 2026-08-10 --to 2026-08-14
  toggl-export --dry-run                Show the plan, submit nothing
  toggl-export --interactive            Pick entries before submitting
  toggl-export --yes                    Skip the confirmation prompt`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runExport()
	},
}

func init() {
	rootCmd.Flags().StringVar(&fromFlag, "from", "", "start of the export range (YYYY-MM-DD or DD/MM/YYYY)")
	rootCmd.Flags().StringVar(&toFlag, "to", "", "end of the export range (YYYY-MM-DD or DD/MM/YYYY)")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "show the export plan without submitting")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "pick entries to submit in an interactive checklist")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"toggl-export version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runExport is the main export flow: fetch, aggregate, display, confirm,
// submit.
func runExport() {
	cfg, ok := loadValidatedConfig()
	if !ok {
		return
	}

	from, to, err := resolveRange()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid date range")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	ctx := context.Background()
	destination := deps.NewDestination(cfg)
	exporter := &export.Exporter{Source: deps.NewSource(cfg), Destination: destination}

	plan, err := exporter.Plan(ctx, from, to)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to build the export plan")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your credentials with 'toggl-export config' and your network connection")
		deps.Exit(1)
		return
	}

	if len(plan) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No matching work found between %s and %s\n", cli.FormatDay(from), cli.FormatDay(to))
		_, _ = fmt.Fprintln(deps.Stdout, "Entries are exported when their description starts with '#<issue> <comment>' and their client/project is a known repository.")
		return
	}

	cli.RenderPlan(deps.Stdout, plan, cli.DefaultStyles())

	if dryRunFlag {
		_, _ = fmt.Fprintln(deps.Stdout, "Dry run: nothing submitted")
		return
	}

	if interactiveFlag {
		selected, confirmed, err := deps.ReviewPlan(plan)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Interactive review failed: %v\n", err)
			deps.Exit(1)
			return
		}
		if !confirmed {
			_, _ = fmt.Fprintln(deps.Stdout, "Export cancelled")
			return
		}
		if len(selected) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "No entries selected, nothing submitted")
			return
		}
		plan = selected
	}

	if !yesFlag && !promptConfirmation(len(plan)) {
		_, _ = fmt.Fprintln(deps.Stdout, "Export cancelled")
		return
	}

	submitPlan(ctx, destination, plan)
}

// loadValidatedConfig loads the config file and verifies that all
// credentials are present.
func loadValidatedConfig() (config.Config, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return config.Config{}, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return config.Config{}, false
	}

	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Configuration is incomplete")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Run 'toggl-export config init' and fill in %s\n", configPath)
		deps.Exit(1)
		return config.Config{}, false
	}

	return cfg, true
}

// resolveRange turns the --from/--to flags into a concrete time range.
// Without flags the range is the current week: Monday through today.
func resolveRange() (time.Time, time.Time, error) {
	start, end := timeutil.CurrentWeekRange(time.Now())

	if fromFlag != "" {
		from, err := timeutil.ParseDate(fromFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = from
	}
	if toFlag != "" {
		to, err := timeutil.ParseDate(toFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = timeutil.EndOfDay(to)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s is before range start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return start, end, nil
}

// promptConfirmation asks the user to confirm the submission.
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation(count int) bool {
	_, _ = fmt.Fprintf(deps.Stdout, "Submit %d %s? [y/N]: ", count, cli.Pluralize("entry", count))

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}

// submitPlan submits entries one at a time so the user can watch
// per-entry progress, records successes in the local submission log,
// and exits non-zero if anything failed.
func submitPlan(ctx context.Context, destination export.Destination, plan []export.AggregatedEntry) {
	var failed int
	var logged []storage.Submission

	for i, e := range plan {
		_, _ = fmt.Fprintf(deps.Stdout, "[%d/%d] %s #%s %s (%s) ... ",
			i+1, len(plan), e.Repository, e.IssueNumber, cli.FormatDay(e.Day), e.DurationLabel)

		if err := destination.LogTime(ctx, e); err != nil {
			_, _ = fmt.Fprintln(deps.Stdout, "failed")
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			failed++
			continue
		}

		_, _ = fmt.Fprintln(deps.Stdout, "ok")
		logged = append(logged, storage.Submission{
			SubmittedAt:   time.Now(),
			Repository:    e.Repository,
			IssueNumber:   e.IssueNumber,
			Comment:       e.Comment,
			Day:           e.Day,
			DurationMs:    e.DurationMs,
			DurationLabel: e.DurationLabel,
		})
	}

	if len(logged) > 0 {
		logPath, err := deps.LogPath()
		if err == nil {
			err = storage.AppendSubmissions(logPath, logged)
		}
		if err != nil {
			// History is best-effort; the submissions themselves went through.
			_, _ = fmt.Fprintf(deps.Stderr, "Warning: Failed to record submissions locally: %v\n", err)
		}
	}

	var total int64
	for _, s := range logged {
		total += s.DurationMs
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Submitted %d %s (%s)\n",
		len(logged), cli.Pluralize("entry", len(logged)), export.FormatDuration(total))

	if failed > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %d %s failed\n", failed, cli.Pluralize("submission", failed))
		deps.Exit(1)
	}
}
