package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/winmaps/drivemap/internal/drive"
)

// Exit codes. Validation failures get a distinct code so logon scripts can
// tell a bad letter or path from a share that would not map.
const (
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitOnError(err)
	}
}

// exitOnError prints a user-friendly error message to stderr and exits with
// the code for the error class.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var verr *drive.ValidationError
	if errors.As(err, &verr) {
		os.Exit(exitValidation)
	}

	os.Exit(exitFailure)
}
