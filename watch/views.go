package watch

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/stint/internal/timeutil"
	"github.com/ayoisaiah/stint/internal/tracker"
)

func (m *Model) statusView() string {
	switch m.tracker.Status() {
	case tracker.StatusRunning:
		return m.style.running.Render("● running")
	case tracker.StatusPaused:
		return m.style.paused.Render("❚❚ paused")
	default:
		return m.style.hint.Render("no active session")
	}
}

func (m *Model) sessionView() string {
	var s strings.Builder

	active := m.tracker.Active()

	s.WriteString(m.style.title.Render("stint"))
	s.WriteString("  " + m.statusView())
	s.WriteString("\n\n")
	s.WriteString(m.style.clock.Render(timeutil.FormatDuration(m.tracker.Elapsed())))

	if active != nil {
		s.WriteString("\n\n")
		s.WriteString(m.style.hint.Render(
			"started " + timeutil.FormatDate(active.StartTime, m.opts.DateFormat),
		))

		if active.ProjectID != nil {
			name := *active.ProjectID
			if p, ok := m.tracker.Project(name); ok {
				name = p.Name
			}

			s.WriteString("\n" + m.style.hint.Render("project "+name))
		}
	}

	return s.String()
}

func (m *Model) helpView() string {
	if m.confirmQuit {
		return m.style.paused.Render("The session keeps running after you quit.") +
			"\n" + m.help.ShortHelpView([]key.Binding{
			defaultKeymap.confirm,
			defaultKeymap.cancel,
		})
	}

	switch m.tracker.Status() {
	case tracker.StatusNone:
		return m.help.ShortHelpView([]key.Binding{
			defaultKeymap.start,
			defaultKeymap.quit,
		})
	default:
		return m.help.ShortHelpView([]key.Binding{
			defaultKeymap.togglePause,
			defaultKeymap.stop,
			defaultKeymap.quit,
		})
	}
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.sessionView())

	if m.err != nil {
		s.WriteString("\n\n" + m.style.err.Render(m.err.Error()))
	}

	s.WriteString("\n\n" + m.helpView())

	return m.style.base.Render(s.String())
}
