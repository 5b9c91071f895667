// Package config implements TOML configuration loading, validation, and
// platform-specific path resolution for drivemap. It supports a four-layer
// override chain (defaults -> config file -> environment -> CLI flags) where
// later layers win.
package config

import (
	"fmt"

	"github.com/winmaps/drivemap/internal/drive"
)

// Config is the top-level configuration structure parsed from a TOML file.
// Fields hold raw validated tokens; conversion into domain types happens in
// DriveMappings and in the CLI layer.
type Config struct {
	Domain     string `toml:"domain"`
	OnFailure  string `toml:"on_failure" validate:"required,oneof=prompt always never"`
	Persistent bool   `toml:"persistent"`

	LogLevel  string `toml:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `toml:"log_format" validate:"required,oneof=auto text json"`
	LogFile   string `toml:"log_file"`

	Mappings []MappingEntry `toml:"mapping" validate:"dive"`
}

// MappingEntry is one [[mapping]] block: a drive letter bound to a UNC share
// path, with an optional human-readable label.
type MappingEntry struct {
	Letter string `toml:"letter" validate:"required,driveletter"`
	Path   string `toml:"path" validate:"required,uncpath"`
	Label  string `toml:"label"`
}

// CLIOverrides holds values from CLI flags that override config file and
// environment settings. Pointer fields distinguish "not specified" (nil)
// from "explicitly set to zero value": --persistent=false is different from
// not passing --persistent at all.
type CLIOverrides struct {
	ConfigPath string  // --config flag (empty = use default)
	Domain     *string // --domain flag
	Persistent *bool   // --persistent flag
}

// DriveMappings converts the raw mapping entries into validated domain
// mappings, preserving file order. Every entry passes through
// drive.NewMapping even after Validate has run; the core packages never
// trust raw file strings.
func (c *Config) DriveMappings() ([]drive.Mapping, error) {
	mappings := make([]drive.Mapping, 0, len(c.Mappings))

	for i := range c.Mappings {
		m, err := drive.NewMapping(c.Mappings[i].Letter, c.Mappings[i].Path)
		if err != nil {
			return nil, fmt.Errorf("mapping[%d]: %w", i, err)
		}

		m.Label = c.Mappings[i].Label
		mappings = append(mappings, m)
	}

	return mappings, nil
}
