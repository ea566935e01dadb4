package watch

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePause key.Binding
	start       key.Binding
	stop        key.Binding
	quit        key.Binding
	confirm     key.Binding
	cancel      key.Binding
}

var defaultKeymap = keymap{
	togglePause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "quit anyway"),
	),
	cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "keep watching"),
	),
}
