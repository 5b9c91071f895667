package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// configFilePermissions is the standard permission mode for config files.
// Owner read/write, group and others read-only.
const configFilePermissions = 0o644

// configDirPermissions is the standard permission mode for config directories.
const configDirPermissions = 0o755

// configTemplate is the starter config file content written by
// "drivemap config init". All settings are present as commented-out defaults
// so users can discover every option without reading docs.
const configTemplate = `# drivemap configuration
# Values commented out below show the built-in defaults.

# Domain hint for credential prompts, e.g. "CORP". Usernames typed without
# a domain are qualified with this.
# domain = ""

# What to do when mappings fail under the ambient identity:
#   prompt - ask before requesting a credential (default)
#   always - request a credential without asking
#   never  - report the failures and stop
# on_failure = "prompt"

# Ask the OS to remember mappings across logons.
# persistent = false

# Log verbosity: debug, info, warn, error
# log_level = "info"

# Log output: auto, text, json (auto picks text on a terminal)
# log_format = "auto"

# Append logs to this file in addition to stderr.
# log_file = ""

# Mappings to reconcile, one [[mapping]] block each. Use single quotes so
# TOML does not treat the backslashes as escapes.

# [[mapping]]
# letter = "H"
# path = '\\filer01\home'
# label = "home"
`

// WriteStarter writes the starter config template to path, creating parent
// directories as needed. It refuses to overwrite an existing file so a
// stray "config init" cannot clobber a curated mapping list.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	return atomicWriteFile(path, []byte(configTemplate))
}

// atomicWriteFile writes data to a temporary file in the same directory as
// path, then renames it to the target path. This prevents partial writes
// from corrupting the config file on crash. Parent directories are created
// as needed.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, configDirPermissions); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tempPath := f.Name()

	// Clean up the temp file on any error path.
	succeeded := false
	defer func() {
		if !succeeded {
			os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()

		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tempPath, configFilePermissions); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	succeeded = true

	return nil
}
