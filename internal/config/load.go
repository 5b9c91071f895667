package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/winmaps/drivemap/internal/drive"
)

// Resolved is the effective configuration after the full override chain has
// been applied. Mappings are converted into domain types and preserve file
// order.
type Resolved struct {
	Path     string `json:"path"`
	FromFile bool   `json:"from_file"`

	Domain     string `json:"domain,omitempty"`
	OnFailure  string `json:"on_failure"`
	Persistent bool   `json:"persistent"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
	LogFile   string `json:"log_file,omitempty"`

	Mappings []drive.Mapping `json:"mappings"`
}

// Load reads and parses a TOML config file, validates it, and returns the
// resulting Config. Unknown keys are treated as fatal errors with "did you
// mean?" suggestions; silently ignoring a typo in a config file leads to
// hard-to-debug behavior.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := checkUnknownKeys(&md); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads a TOML config file if it exists, otherwise returns a
// Config populated with all default values. The boolean reports whether the
// file was actually read. This supports the zero-config first-run
// experience: "drivemap map H \\server\share" works without a config file.
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), false, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, false, err
	}

	return cfg, true, nil
}

// Resolve loads configuration and applies the four-layer override chain:
// defaults -> config file -> environment variables -> CLI flags.
// The precedence order ensures CLI flags always win, matching user
// expectations for one-off overrides without editing the config file.
func Resolve(env EnvOverrides, cli CLIOverrides) (*Resolved, error) {
	// 1. Resolve config path: CLI > env > default
	path := DefaultConfigPath()
	if env.ConfigPath != "" {
		path = env.ConfigPath
	}

	if cli.ConfigPath != "" {
		path = cli.ConfigPath
	}

	// 2. Load config file (returns defaults if no file exists)
	cfg, fromFile, err := LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	// 3. Apply env overrides
	if env.Domain != "" {
		cfg.Domain = env.Domain
	}

	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}

	// 4. Apply CLI overrides (pointer fields: nil = not specified)
	if cli.Domain != nil {
		cfg.Domain = *cli.Domain
	}

	if cli.Persistent != nil {
		cfg.Persistent = *cli.Persistent
	}

	// 5. Validate the final merged values; env and CLI layers can
	// introduce errors the file never had
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mappings, err := cfg.DriveMappings()
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Path:       path,
		FromFile:   fromFile,
		Domain:     cfg.Domain,
		OnFailure:  cfg.OnFailure,
		Persistent: cfg.Persistent,
		LogLevel:   cfg.LogLevel,
		LogFormat:  cfg.LogFormat,
		LogFile:    cfg.LogFile,
		Mappings:   mappings,
	}, nil
}
