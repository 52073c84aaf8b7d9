package cli

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/pomo/internal/service"
)

// NewPromptConfirmer returns a Confirmer that asks the user on the terminal.
// Aborting the prompt counts as a decline, not an error.
func NewPromptConfirmer() service.Confirmer {
	return service.ConfirmerFunc(func(description string) (bool, error) {
		var approved bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(description).
					Affirmative("Yes").
					Negative("No").
					Value(&approved),
			),
		).WithShowHelp(false)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return false, err
		}
		return approved, nil
	})
}

// NewStaticConfirmer answers every prompt with a fixed verdict. Used for
// --yes runs and for non-interactive invocations.
func NewStaticConfirmer(approve bool) service.Confirmer {
	return service.ConfirmerFunc(func(string) (bool, error) {
		return approve, nil
	})
}
