// Package config loads and persists the TOML configuration holding the
// Toggl and tracker credentials. Configuration is always passed around
// as an explicit value; nothing reads it from ambient state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "toggl-export"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultTogglURL is the Toggl API base URL used when the config omits one
	DefaultTogglURL = "https://api.track.toggl.com"
)

// Config represents the application configuration
type Config struct {
	// TogglAPIToken authenticates against the Toggl API (Profile -> API Token)
	TogglAPIToken string `toml:"toggl_api_token"`
	// TogglWorkspaceID selects the Toggl workspace to export from
	TogglWorkspaceID int64 `toml:"toggl_workspace_id"`
	// TogglURL overrides the Toggl API base URL (mainly for testing)
	TogglURL string `toml:"toggl_url"`
	// TrackerURL is the base URL of the issue tracker entries are submitted to
	TrackerURL string `toml:"tracker_url"`
	// TrackerToken authenticates against the issue tracker
	TrackerToken string `toml:"tracker_token"`
}

// DefaultConfig returns a Config with defaults for everything that has one.
// Credentials have no default; Validate reports them when missing.
func DefaultConfig() Config {
	return Config{
		TogglURL: DefaultTogglURL,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads the config file at the given path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.TogglURL == "" {
		cfg.TogglURL = DefaultTogglURL
	}
	return cfg, nil
}

// LoadOrDefault reads the config file at the given path, falling back to
// defaults when the file doesn't exist. A file that exists but fails to
// parse is an error, not a silent fallback.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the config to the given path in TOML format.
func Save(path string, cfg Config) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}

// Validate checks that every field needed for an export run is set.
// The error lists all missing fields at once so the user can fix the
// file in one pass.
func (c Config) Validate() error {
	var missing []string
	if c.TogglAPIToken == "" {
		missing = append(missing, "toggl_api_token")
	}
	if c.TogglWorkspaceID == 0 {
		missing = append(missing, "toggl_workspace_id")
	}
	if c.TrackerURL == "" {
		missing = append(missing, "tracker_url")
	}
	if c.TrackerToken == "" {
		missing = append(missing, "tracker_token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# toggl-export configuration file

# Toggl API token (Toggl Track -> Profile -> API Token)
toggl_api_token = ""

# Toggl workspace id to export entries from
toggl_workspace_id = 0

# Issue tracker base URL, e.g. "https://tracker.example.com"
tracker_url = ""

# Issue tracker API token
tracker_token = ""
`
}

// WriteSample creates a sample config file at the given path.
// Refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	return os.WriteFile(path, []byte(GenerateSampleConfig()), 0600)
}
