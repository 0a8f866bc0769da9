package cmd

import (
	"io"
	"os"

	"github.com/scalableminds/toggl-export/internal/config"
	"github.com/scalableminds/toggl-export/internal/export"
	"github.com/scalableminds/toggl-export/internal/review"
	"github.com/scalableminds/toggl-export/internal/storage"
	"github.com/scalableminds/toggl-export/internal/toggl"
	"github.com/scalableminds/toggl-export/internal/tracker"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	ConfigPath func() (string, error)
	LogPath    func() (string, error)

	// NewSource and NewDestination construct the API clients from the
	// loaded config. Tests replace them with in-memory fakes.
	NewSource      func(cfg config.Config) export.EntrySource
	NewDestination func(cfg config.Config) export.Destination

	// ReviewPlan runs the interactive checklist over the plan.
	ReviewPlan func(entries []export.AggregatedEntry) ([]export.AggregatedEntry, bool, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		ConfigPath: config.GetConfigPath,
		LogPath:    storage.GetLogPath,
		NewSource: func(cfg config.Config) export.EntrySource {
			return toggl.NewClient(cfg.TogglURL, cfg.TogglAPIToken, cfg.TogglWorkspaceID)
		},
		NewDestination: func(cfg config.Config) export.Destination {
			return tracker.NewClient(cfg.TrackerURL, cfg.TrackerToken)
		},
		ReviewPlan: review.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
