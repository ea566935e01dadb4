package watch

import "github.com/charmbracelet/lipgloss"

type styles struct {
	base    lipgloss.Style
	title   lipgloss.Style
	clock   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	hint    lipgloss.Style
	err     lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("#1E88E5")
	text := lipgloss.Color("#212121")

	if dark {
		accent = lipgloss.Color("#64B5F6")
		text = lipgloss.Color("#FAFAFA")
	}

	return styles{
		base:    lipgloss.NewStyle().Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		clock:   lipgloss.NewStyle().Bold(true).Foreground(text),
		running: lipgloss.NewStyle().Foreground(lipgloss.Color("#43A047")),
		paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FB8C00")),
		hint:    lipgloss.NewStyle().Faint(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
	}
}
