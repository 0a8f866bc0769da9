package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalableminds/toggl-export/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration for toggl-export.

Shows the configuration file location, whether it exists, and the current
settings. Credentials are shown as set/not set, never printed.

Configuration file location:
  ~/.config/toggl-export/config.toml    Linux/macOS
  %APPDATA%\toggl-export\config.toml    Windows

Use 'toggl-export config init' to create a sample config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Create a commented sample config file. Refuses to overwrite an existing one.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for toggl-export")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:        %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:             File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:             No config file")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Toggl API token:    %s\n", describeSecret(cfg.TogglAPIToken))
	_, _ = fmt.Fprintf(deps.Stdout, "Toggl workspace:    %s\n", describeWorkspace(cfg.TogglWorkspaceID))
	_, _ = fmt.Fprintf(deps.Stdout, "Toggl URL:          %s\n", cfg.TogglURL)
	_, _ = fmt.Fprintf(deps.Stdout, "Tracker URL:        %s\n", describeValue(cfg.TrackerURL))
	_, _ = fmt.Fprintf(deps.Stdout, "Tracker token:      %s\n", describeSecret(cfg.TrackerToken))

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'toggl-export config init' to create a sample config file.")
	}
}

// initConfig creates a sample config file
func initConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := config.WriteSample(configPath); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", configPath)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file and fill in your Toggl and tracker credentials.")
}

func describeSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "(set)"
}

func describeValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func describeWorkspace(id int64) string {
	if id == 0 {
		return "(not set)"
	}
	return fmt.Sprintf("%d", id)
}
