package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestLoad_ValidFullConfig(t *testing.T) {
	tomlContent := `
domain = "CORP"
on_failure = "never"
persistent = true

log_level = "debug"
log_format = "json"
log_file = "/tmp/drivemap.log"

[[mapping]]
letter = "H"
path = '\\filer01\home'
label = "home"

[[mapping]]
letter = "S"
path = '\\filer01\shared'
`

	path := writeTestConfig(t, tomlContent)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CORP", cfg.Domain)
	assert.Equal(t, "never", cfg.OnFailure)
	assert.True(t, cfg.Persistent)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/drivemap.log", cfg.LogFile)

	require.Len(t, cfg.Mappings, 2)
	assert.Equal(t, "H", cfg.Mappings[0].Letter)
	assert.Equal(t, `\\filer01\home`, cfg.Mappings[0].Path)
	assert.Equal(t, "home", cfg.Mappings[0].Label)
	assert.Equal(t, "S", cfg.Mappings[1].Letter)
	assert.Empty(t, cfg.Mappings[1].Label)
}

func TestLoad_MinimalConfig_UsesDefaults(t *testing.T) {
	path := writeTestConfig(t, "")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Domain)
	assert.Equal(t, "prompt", cfg.OnFailure)
	assert.False(t, cfg.Persistent)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Empty(t, cfg.Mappings)
}

func TestLoad_PartialConfig_UsesDefaults(t *testing.T) {
	path := writeTestConfig(t, `log_level = "warn"`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "prompt", cfg.OnFailure)
	assert.Equal(t, "auto", cfg.LogFormat)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeTestConfig(t, `[[mapping
not valid toml`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	require.Error(t, err)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeTestConfig(t, `on_failure = "sometimes"`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "on_failure")
}

func TestLoad_DoubleQuotedPathStillParses(t *testing.T) {
	// Double-quoted TOML strings treat backslash as an escape, so users
	// must double them. Both spellings decode to the same path.
	path := writeTestConfig(t, `
[[mapping]]
letter = "H"
path = "\\\\filer01\\home"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Mappings, 1)
	assert.Equal(t, `\\filer01\home`, cfg.Mappings[0].Path)
}

func TestLoadOrDefault_FileExists(t *testing.T) {
	path := writeTestConfig(t, `log_level = "debug"`)
	cfg, fromFile, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.True(t, fromFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadOrDefault_FileNotFound(t *testing.T) {
	cfg, fromFile, err := LoadOrDefault("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, "prompt", cfg.OnFailure)
	assert.Equal(t, "info", cfg.LogLevel)
}

// --- Resolve: override chain tests ---

func TestResolve_FileOnly(t *testing.T) {
	path := writeTestConfig(t, `
domain = "CORP"

[[mapping]]
letter = "H"
path = '\\filer01\home'
`)
	resolved, err := Resolve(EnvOverrides{ConfigPath: path}, CLIOverrides{})
	require.NoError(t, err)

	assert.Equal(t, path, resolved.Path)
	assert.True(t, resolved.FromFile)
	assert.Equal(t, "CORP", resolved.Domain)
	require.Len(t, resolved.Mappings, 1)
	assert.Equal(t, "H", resolved.Mappings[0].Letter.String())
	assert.Equal(t, `\\filer01\home`, resolved.Mappings[0].Target.String())
}

func TestResolve_NoConfigFile_Defaults(t *testing.T) {
	resolved, err := Resolve(EnvOverrides{ConfigPath: "/nonexistent/config.toml"}, CLIOverrides{})
	require.NoError(t, err)

	assert.False(t, resolved.FromFile)
	assert.Equal(t, "prompt", resolved.OnFailure)
	assert.Empty(t, resolved.Mappings)
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	path := writeTestConfig(t, `
domain = "CORP"
log_level = "info"
`)
	resolved, err := Resolve(
		EnvOverrides{ConfigPath: path, Domain: "LAB", LogLevel: "debug"},
		CLIOverrides{},
	)
	require.NoError(t, err)

	assert.Equal(t, "LAB", resolved.Domain)
	assert.Equal(t, "debug", resolved.LogLevel)
}

func TestResolve_CLIOverridesEnv(t *testing.T) {
	path := writeTestConfig(t, `domain = "CORP"`)
	domain := "STAGING"
	resolved, err := Resolve(
		EnvOverrides{ConfigPath: path, Domain: "LAB"},
		CLIOverrides{Domain: &domain},
	)
	require.NoError(t, err)

	assert.Equal(t, "STAGING", resolved.Domain)
}

func TestResolve_CLIConfigPathOverridesEnv(t *testing.T) {
	path := writeTestConfig(t, `domain = "CORP"`)
	resolved, err := Resolve(
		EnvOverrides{ConfigPath: "/wrong/path"},
		CLIOverrides{ConfigPath: path},
	)
	require.NoError(t, err)

	assert.Equal(t, path, resolved.Path)
	assert.Equal(t, "CORP", resolved.Domain)
}

func TestResolve_PersistentFalseOverridesTrue(t *testing.T) {
	path := writeTestConfig(t, `persistent = true`)
	persistent := false
	resolved, err := Resolve(
		EnvOverrides{ConfigPath: path},
		CLIOverrides{Persistent: &persistent},
	)
	require.NoError(t, err)

	assert.False(t, resolved.Persistent)
}

func TestResolve_EnvCanIntroduceValidationError(t *testing.T) {
	path := writeTestConfig(t, ``)
	_, err := Resolve(
		EnvOverrides{ConfigPath: path, LogLevel: "loud"},
		CLIOverrides{},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestResolve_InvalidConfigFile(t *testing.T) {
	path := writeTestConfig(t, `[[mapping]
broken`)
	_, err := Resolve(EnvOverrides{ConfigPath: path}, CLIOverrides{})
	require.Error(t, err)
}

func TestDriveMappings_PreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mappings = []MappingEntry{
		{Letter: "T", Path: `\\srv\three`},
		{Letter: "H", Path: `\\srv\one`, Label: "home"},
		{Letter: "S", Path: `\\srv\two`},
	}

	mappings, err := cfg.DriveMappings()
	require.NoError(t, err)
	require.Len(t, mappings, 3)
	assert.Equal(t, "T", mappings[0].Letter.String())
	assert.Equal(t, "H", mappings[1].Letter.String())
	assert.Equal(t, "home", mappings[1].Label)
	assert.Equal(t, "S", mappings[2].Letter.String())
}

func TestDriveMappings_BadEntryReportsIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mappings = []MappingEntry{
		{Letter: "H", Path: `\\srv\home`},
		{Letter: "??", Path: `\\srv\x`},
	}

	_, err := cfg.DriveMappings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping[1]")
}
