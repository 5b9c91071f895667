package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winmaps/drivemap/internal/drive"
	"github.com/winmaps/drivemap/testutil"
)

// fakeQuerier serves canned live bindings keyed by letter.
type fakeQuerier struct {
	bindings map[string]string
	errs     map[string]error
}

func (f *fakeQuerier) Query(letter drive.Letter) (drive.UNCPath, bool, error) {
	if err := f.errs[letter.String()]; err != nil {
		return drive.UNCPath{}, false, err
	}

	target, ok := f.bindings[letter.String()]
	if !ok {
		return drive.UNCPath{}, false, nil
	}

	p, _ := drive.ParseUNC(target)

	return p, true, nil
}

func TestCollectStatus(t *testing.T) {
	oldLogger := logger

	t.Cleanup(func() { logger = oldLogger })

	logger = testutil.DiscardLogger()

	desired := []drive.Mapping{
		mustMapping(t, "H", `\\filer01\home`),
		mustMapping(t, "S", `\\filer01\shared`),
		mustMapping(t, "T", `\\filer01\tools`),
		mustMapping(t, "U", `\\filer01\archive`),
	}
	desired[1].Label = "shared"

	q := &fakeQuerier{
		bindings: map[string]string{
			// Case differs from the desired target; still a match.
			"H": `\\FILER01\HOME`,
			"S": `\\filer02\elsewhere`,
		},
		errs: map[string]error{
			"U": errors.New("device error"),
		},
	}

	rows := collectStatus(q, desired)
	require.Len(t, rows, 4)

	assert.Equal(t, statusOK, rows[0].Status)
	assert.Equal(t, `\\FILER01\HOME`, rows[0].Live)

	assert.Equal(t, statusWrongTarget, rows[1].Status)
	assert.Equal(t, `\\filer02\elsewhere`, rows[1].Live)
	assert.Equal(t, "shared", rows[1].Label)

	assert.Equal(t, statusUnmapped, rows[2].Status)
	assert.Empty(t, rows[2].Live)

	assert.Equal(t, statusError, rows[3].Status)
	assert.Equal(t, "device error", rows[3].Error)
}

func TestCollectStatus_PreservesOrder(t *testing.T) {
	oldLogger := logger

	t.Cleanup(func() { logger = oldLogger })

	logger = testutil.DiscardLogger()

	desired := []drive.Mapping{
		mustMapping(t, "Z", `\\filer01\z`),
		mustMapping(t, "A", `\\filer01\a`),
	}

	rows := collectStatus(&fakeQuerier{}, desired)
	require.Len(t, rows, 2)

	// Config order, not alphabetical.
	assert.Equal(t, "Z:", rows[0].Letter)
	assert.Equal(t, "A:", rows[1].Letter)
}

func TestPrintStatusTable(t *testing.T) {
	var buf bytes.Buffer

	rows := []statusRow{
		{Letter: "H:", Target: `\\filer01\home`, Status: statusOK, Label: "home"},
		{Letter: "S:", Target: `\\filer01\shared`, Status: statusWrongTarget},
		{Letter: "T:", Target: `\\filer01\tools`, Status: statusUnmapped},
	}

	printStatusTable(&buf, rows)
	output := buf.String()

	assert.Contains(t, output, "LETTER")
	assert.Contains(t, output, "TARGET")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "LABEL")
	assert.Contains(t, output, "H:")
	assert.Contains(t, output, "wrong target")
	assert.Contains(t, output, "unmapped")
}
