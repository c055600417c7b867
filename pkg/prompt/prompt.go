// Package prompt provides the interactive template picker. It is only
// used when the user supplied no template names on the command line.
package prompt

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/logging"
	"github.com/arthur-debert/igno/pkg/ui"
)

// Selector picks one name out of a list of options.
type Selector interface {
	Choose(options []string) (string, error)
}

// InteractiveSelector shows a fuzzy-searchable select prompt on the
// terminal, with the first option highlighted by default.
type InteractiveSelector struct {
	promptText string
}

// NewSelector creates an InteractiveSelector with the standard prompt.
func NewSelector() *InteractiveSelector {
	return &InteractiveSelector{promptText: "Select a gitignore template"}
}

// Choose presents the options and returns the chosen one. It fails when
// there is nothing to choose from, when no terminal is attached, or
// when the prompt is aborted.
func (s *InteractiveSelector) Choose(options []string) (string, error) {
	log := logging.GetLogger("prompt")

	if len(options) == 0 {
		return "", errors.New(errors.ErrSelection, "no templates available to select from")
	}
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return "", errors.New(errors.ErrSelection, "interactive selection requires a terminal")
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		WithDefaultText(s.promptText).
		WithFilter(true).
		Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSelection, "selection aborted")
	}

	// pterm returns the option text; guard against anything outside the list
	if !containsOption(options, choice) {
		return "", errors.Newf(errors.ErrSelection, "selection '%s' out of range", choice)
	}

	log.Debug().Str("choice", choice).Msg("Template selected")
	return choice, nil
}

func containsOption(options []string, choice string) bool {
	for _, o := range options {
		if o == choice {
			return true
		}
	}
	return false
}
