// Package watch renders the active session live in the terminal and lets
// the user start, pause, resume and stop it.
package watch

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/tracker"
)

// tickMsg asks for a re-render of the elapsed time.
type tickMsg time.Time

// Options configures the live view.
type Options struct {
	// OnStop is called after a session is stopped from the view
	OnStop       func(*models.Session)
	DateFormat   string
	TickInterval time.Duration
	DarkTheme    bool
}

// Model is the bubbletea model of the live view.
type Model struct {
	ctx         context.Context
	tracker     *tracker.Tracker
	ticker      *tracker.Ticker
	err         error
	opts        Options
	style       styles
	help        help.Model
	confirmQuit bool
}

// New returns a Model operating on tr. The ticker starts and stops with the
// active session.
func New(ctx context.Context, tr *tracker.Tracker, ticker *tracker.Ticker, opts Options) *Model {
	return &Model{
		ctx:     ctx,
		tracker: tr,
		ticker:  ticker,
		opts:    opts,
		style:   newStyles(opts.DarkTheme),
		help:    help.New(),
	}
}

// Run starts the live view and blocks until the user quits.
func Run(ctx context.Context, tr *tracker.Tracker, opts Options) error {
	var p *tea.Program

	ticker := tracker.NewTicker(opts.TickInterval, func(now time.Time) {
		p.Send(tickMsg(now))
	})

	m := New(ctx, tr, ticker, opts)

	p = tea.NewProgram(m, tea.WithContext(ctx))

	defer ticker.Stop()

	_, err := p.Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	m.syncTicker()

	return nil
}

func (m *Model) syncTicker() {
	m.ticker.Sync(m.tracker.Active() != nil)
}
