package credential

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// wrapPromptErr converts promptui interrupt/abort errors to ErrAborted so
// callers handle cancellation uniformly.
func wrapPromptErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		return ErrAborted
	}

	return err
}

// TerminalPrompter collects credentials interactively on the terminal. The
// secret prompt masks input; nothing typed there is echoed back.
type TerminalPrompter struct{}

// Username prompts for the account name. Free-form; domain qualification is
// the Acquirer's job.
func (TerminalPrompter) Username() (string, error) {
	prompt := promptui.Prompt{Label: "Username"}

	result, err := prompt.Run()
	return result, wrapPromptErr(err)
}

// Password prompts for the secret with masked input.
func (TerminalPrompter) Password() (string, error) {
	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
	}

	result, err := prompt.Run()
	return result, wrapPromptErr(err)
}

// ConfirmRetry asks whether the failing mappings should be retried with
// credentials. Answering no returns false without error; Ctrl+C returns
// ErrAborted.
func (TerminalPrompter) ConfirmRetry(failed int) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%d mapping(s) failed, retry with credentials? [y/N]", failed),
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, ErrAborted
		}
		// promptui reports a "no" answer as ErrAbort.
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
