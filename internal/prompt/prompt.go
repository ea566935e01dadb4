// Package prompt asks the user questions in the terminal.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Option is a labelled choice.
type Option[T comparable] struct {
	Value T
	Label string
}

// Confirm asks a yes or no question. Aborting the prompt counts as no.
func Confirm(title, description string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}

	return ok, err
}

// SelectMany lets the user pick any number of options. Aborting returns
// no selection.
func SelectMany[T comparable](title string, options []Option[T]) ([]T, error) {
	opts := make([]huh.Option[T], len(options))
	for i := range options {
		opts[i] = huh.NewOption(options[i].Label, options[i].Value)
	}

	var selected []T

	err := huh.NewMultiSelect[T]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return nil, nil
	}

	return selected, err
}
