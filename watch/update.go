package watch

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/stint/internal/tracker"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// the view reads the clock on render
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		slog.Debug("watch key", slog.String("msg", spew.Sdump(msg)))

		if m.confirmQuit {
			return m.handleQuitPrompt(msg)
		}

		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) handleQuitPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.confirm), msg.Type == tea.KeyCtrlC:
		return m, m.quit()
	case key.Matches(msg, defaultKeymap.cancel):
		m.confirmQuit = false
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, defaultKeymap.start):
		_, err := m.tracker.Start(m.ctx)
		if errors.Is(err, tracker.ErrSessionActive) {
			// the key is also shown while a session runs
			err = nil
		}

		m.err = err

	case key.Matches(msg, defaultKeymap.togglePause):
		switch m.tracker.Status() {
		case tracker.StatusRunning:
			m.err = m.tracker.Pause(m.ctx)
		case tracker.StatusPaused:
			m.err = m.tracker.Resume(m.ctx)
		case tracker.StatusNone:
		}

	case key.Matches(msg, defaultKeymap.stop):
		stopped, err := m.tracker.Stop(m.ctx)

		m.err = err
		if err == nil && stopped != nil && m.opts.OnStop != nil {
			m.opts.OnStop(stopped)
		}

	case key.Matches(msg, defaultKeymap.quit):
		if m.tracker.Active() != nil {
			m.confirmQuit = true
			return m, nil
		}

		return m, m.quit()
	}

	m.syncTicker()

	return m, nil
}

func (m *Model) quit() tea.Cmd {
	m.ticker.Stop()

	return tea.Quit
}
