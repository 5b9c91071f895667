package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winmaps/drivemap/internal/drive"
	"github.com/winmaps/drivemap/internal/wnet"
)

var flagForce bool

func newUnmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unmap LETTER",
		Short: "Remove a drive letter mapping",
		Long: `Disconnect a mapped drive letter and forget its persistent
registration. Letters that are not mapped are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: runUnmap,
	}

	cmd.Flags().BoolVar(&flagForce, "force", false, "disconnect even with open files on the share")

	return cmd
}

// unmapPayload is the JSON shape of an unmap result.
type unmapPayload struct {
	Letter  string `json:"letter"`
	Removed bool   `json:"removed"`
	Was     string `json:"was,omitempty"`
}

func runUnmap(_ *cobra.Command, args []string) error {
	letter, err := drive.ParseLetter(args[0])
	if err != nil {
		return err
	}

	provider, err := wnet.New(wnet.Options{
		Force:  flagForce,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	prior, bound, err := provider.Query(letter)
	if err != nil {
		return fmt.Errorf("querying %s: %w", letter.WithColon(), err)
	}

	if !bound {
		if flagJSON {
			return printJSON(unmapPayload{Letter: letter.WithColon(), Removed: false})
		}

		fmt.Printf("%s is not mapped\n", letter.WithColon())

		return nil
	}

	if err := provider.Unbind(letter); err != nil {
		if errors.Is(err, wnet.ErrOpenFiles) && !flagForce {
			statusf("Hint: files are open on %s; retry with --force to disconnect anyway.\n", letter.WithColon())
		}

		return fmt.Errorf("unmapping %s: %w", letter.WithColon(), err)
	}

	if flagJSON {
		return printJSON(unmapPayload{Letter: letter.WithColon(), Removed: true, Was: prior.String()})
	}

	if prior.IsZero() {
		fmt.Printf("%s unmapped\n", letter.WithColon())
	} else {
		fmt.Printf("%s unmapped (was %s)\n", letter.WithColon(), prior)
	}

	return nil
}
