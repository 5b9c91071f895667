package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winmaps/drivemap/internal/config"
	"github.com/winmaps/drivemap/internal/drive"
)

func TestRunConfigInit_WritesStarter(t *testing.T) {
	oldPath := flagConfigPath

	t.Cleanup(func() { flagConfigPath = oldPath })

	target := filepath.Join(t.TempDir(), "config.toml")
	flagConfigPath = target

	require.NoError(t, runConfigInit(nil, nil))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# drivemap configuration"))
}

func TestRunConfigInit_RefusesExistingFile(t *testing.T) {
	oldPath := flagConfigPath

	t.Cleanup(func() { flagConfigPath = oldPath })

	target := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(target, []byte("domain = \"CORP\"\n"), 0o600)
	require.NoError(t, err)

	flagConfigPath = target

	err = runConfigInit(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The existing file is untouched.
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "domain = \"CORP\"\n", string(data))
}

func TestRunConfigInit_EnvFallback(t *testing.T) {
	oldPath := flagConfigPath

	t.Cleanup(func() { flagConfigPath = oldPath })

	flagConfigPath = ""
	target := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv(config.EnvConfig, target)

	require.NoError(t, runConfigInit(nil, nil))
	assert.FileExists(t, target)
}

func TestRunConfigInit_FlagBeatsEnv(t *testing.T) {
	oldPath := flagConfigPath

	t.Cleanup(func() { flagConfigPath = oldPath })

	tmpDir := t.TempDir()
	flagTarget := filepath.Join(tmpDir, "flag.toml")
	envTarget := filepath.Join(tmpDir, "env.toml")

	flagConfigPath = flagTarget
	t.Setenv(config.EnvConfig, envTarget)

	require.NoError(t, runConfigInit(nil, nil))
	assert.FileExists(t, flagTarget)
	assert.NoFileExists(t, envTarget)
}

func TestRunConfigShow_NoConfigLoaded(t *testing.T) {
	oldCfg := resolvedCfg

	t.Cleanup(func() { resolvedCfg = oldCfg })

	resolvedCfg = nil

	err := runConfigShow(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration loaded")
}

func TestRunConfigShow_RendersResolved(t *testing.T) {
	oldCfg := resolvedCfg
	oldJSON := flagJSON

	t.Cleanup(func() {
		resolvedCfg = oldCfg
		flagJSON = oldJSON
	})

	m, err := drive.NewMapping("H", `\\filer01\home`)
	require.NoError(t, err)

	resolvedCfg = &config.Resolved{
		Path:      "/tmp/drivemap.toml",
		FromFile:  true,
		OnFailure: "prompt",
		LogLevel:  "info",
		LogFormat: "auto",
		Mappings:  []drive.Mapping{m},
	}

	flagJSON = false
	require.NoError(t, runConfigShow(nil, nil))

	flagJSON = true
	require.NoError(t, runConfigShow(nil, nil))
}
