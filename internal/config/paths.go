package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform identifier for the primary target.
const platformWindows = "windows"

// Application directory name used across all platforms.
const appName = "drivemap"

// Config file name.
const configFileName = "config.toml"

// DefaultConfigDir returns the platform-specific directory for the config
// file. On Windows this is %APPDATA%\drivemap. Other platforms follow XDG
// (XDG_CONFIG_HOME, defaulting to ~/.config/drivemap) so the tool can be
// developed and tested off the target machine.
func DefaultConfigDir() string {
	if runtime.GOOS == platformWindows {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	return filepath.Join(home, ".config", appName)
}

// DefaultConfigPath returns the full path to the default config file.
// This is used as the fallback when neither DRIVEMAP_CONFIG nor --config
// is specified.
func DefaultConfigPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}

	return filepath.Join(dir, configFileName)
}
