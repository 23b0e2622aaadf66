// Package config loads vibedom's ambient settings.toml (SPEC_FULL.md §3.5):
// path overrides, the container image reference, and the default
// housekeeping age. Trimmed from the teacher's settings.go module-table
// shape (one struct per [table], pelletier/go-toml/v2, unknown keys
// ignored) down to the three tables this spec actually needs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the top-level settings.toml shape.
type Settings struct {
	SchemaVersion int                  `toml:"schema_version"`
	Paths         PathsSettings        `toml:"paths"`
	Container     ContainerSettings    `toml:"container"`
	Housekeeping  HousekeepingSettings `toml:"housekeeping"`
}

// PathsSettings holds overridable filesystem roots.
type PathsSettings struct {
	LogsBase   string `toml:"logs_base"`
	ConfigBase string `toml:"config_base"`
}

// ContainerSettings holds the session container image reference.
type ContainerSettings struct {
	Image string `toml:"image"`
}

// HousekeepingSettings holds the default `housekeeping` age threshold in days.
type HousekeepingSettings struct {
	DefaultDays int `toml:"default_days"`
}

// FileName is the fixed settings filename under config_base.
const FileName = "settings.toml"

// Defaults returns the settings used when no settings.toml is present, or
// to fill in any table missing from a partially-written one.
func Defaults() Settings {
	return Settings{
		SchemaVersion: 1,
		Paths: PathsSettings{
			LogsBase:   "~/.vibedom/sessions",
			ConfigBase: "~/.vibedom/config",
		},
		Container: ContainerSettings{
			Image: "vibedom/sandbox:latest",
		},
		Housekeeping: HousekeepingSettings{
			DefaultDays: 7,
		},
	}
}

// Load reads and parses configPath, falling back to Defaults() for any
// table the file omits (spec: "unknown fields are ignored"; symmetrically
// an absent file or absent table is not fatal).
func Load(configPath string) (Settings, error) {
	settings := Defaults()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("config: read %s: %w", configPath, err)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", configPath, err)
	}
	return settings, nil
}

// ExpandHome resolves a leading "~" in p against the current user's home
// directory, the way every path in settings.toml is written.
func ExpandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	rest := strings.TrimPrefix(p, "~")
	return filepath.Join(home, rest), nil
}
