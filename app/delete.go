package app

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stint/internal/prompt"
	"github.com/ayoisaiah/stint/internal/selection"
)

// Prompts are variables so that tests can answer them.
var (
	confirm    = prompt.Confirm
	selectMany = prompt.SelectMany[string]
)

// bulkDelete is the shared flow of the delete commands. The selection is
// built from args, from every id when all is set, or interactively.
// Unknown ids in args are rejected before anything is deleted.
func bulkDelete(
	e *env,
	noun string,
	args []string,
	all bool,
	options []prompt.Option[string],
	del func([]string) error,
) error {
	if len(options) == 0 {
		pterm.Info.Printfln("There are no %s to delete", noun)
		return nil
	}

	known := make(map[string]struct{}, len(options))
	ids := make([]string, len(options))

	for i := range options {
		known[options[i].Value] = struct{}{}
		ids[i] = options[i].Value
	}

	sel := selection.New[string]()

	switch {
	case all:
		sel.ToggleAll(ids)

	case len(args) > 0:
		for _, id := range args {
			if _, ok := known[id]; !ok {
				return errNotFound(noun, id)
			}

			if !sel.Has(id) {
				sel.Toggle(id)
			}
		}

	default:
		picked, err := selectMany(fmt.Sprintf("Select the %s to delete", noun), options)
		if err != nil {
			return err
		}

		for _, id := range picked {
			sel.Toggle(id)
		}
	}

	deleted, err := sel.Delete(func(n int) (bool, error) {
		if !e.cfg.ShouldConfirm() {
			return true, nil
		}

		return confirm(
			fmt.Sprintf("Delete %d %s?", n, noun),
			"This cannot be undone.",
		)
	}, del)
	if err != nil {
		return err
	}

	if deleted {
		pterm.Success.Printfln("Deleted the selected %s", noun)
	} else {
		pterm.Info.Println("Nothing was deleted")
	}

	return nil
}

func errNotFound(noun, id string) error {
	if noun == nounProjects {
		return errProjectNotFound.Fmt(id)
	}

	return errSessionNotFound.Fmt(id)
}
