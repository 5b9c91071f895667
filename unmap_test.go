package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winmaps/drivemap/internal/drive"
)

func TestNewUnmapCmd_Flags(t *testing.T) {
	cmd := newUnmapCmd()

	assert.NotNil(t, cmd.Flags().Lookup("force"), "expected flag \"force\" not found")
}

func TestNewUnmapCmd_RequiresOneArg(t *testing.T) {
	cmd := newUnmapCmd()

	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"H"}))
	assert.Error(t, cmd.Args(cmd, []string{"H", "S"}))
}

func TestRunUnmap_InvalidLetter(t *testing.T) {
	err := runUnmap(nil, []string{"1"})
	require.Error(t, err)

	var verr *drive.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "drive letter", verr.Field)
}
