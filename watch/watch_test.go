package watch

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/tracker"
)

type clock struct {
	ms int64
}

func (c *clock) now() time.Time {
	return time.UnixMilli(c.ms)
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, state tracker.State) (*Model, *clock, *[]*models.Session) {
	t.Helper()

	c := &clock{ms: 1000}
	tr := tracker.New(state, tracker.WithClock(c.now))
	ticker := tracker.NewTicker(time.Hour, func(time.Time) {})

	t.Cleanup(ticker.Stop)

	var stopped []*models.Session

	m := New(context.Background(), tr, ticker, Options{
		OnStop: func(s *models.Session) {
			stopped = append(stopped, s)
		},
	})

	m.Init()

	return m, c, &stopped
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func TestSessionLifecycleKeys(t *testing.T) {
	m, c, stopped := newTestModel(t, tracker.State{})

	assert.False(t, m.ticker.Running())
	assert.Contains(t, m.View(), "no active session")

	m.Update(keyPress("s"))
	assert.Equal(t, tracker.StatusRunning, m.tracker.Status())
	assert.True(t, m.ticker.Running())

	c.ms = 5000
	assert.Contains(t, m.View(), "00:00:04")

	m.Update(keyPress("p"))
	assert.Equal(t, tracker.StatusPaused, m.tracker.Status())
	assert.Contains(t, m.View(), "paused")

	c.ms = 7000
	m.Update(keyPress("p"))
	assert.Equal(t, tracker.StatusRunning, m.tracker.Status())

	c.ms = 9000
	m.Update(keyPress("x"))
	assert.Equal(t, tracker.StatusNone, m.tracker.Status())
	assert.False(t, m.ticker.Running())

	require.Len(t, *stopped, 1)
	assert.Equal(t, int64(2000), (*stopped)[0].TotalPausedDuration)

	sessions := m.tracker.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, int64(9000), *sessions[0].EndTime)
}

func TestStartWhileActiveIsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, tracker.State{})

	m.Update(keyPress("s"))
	id := m.tracker.Active().ID

	m.Update(keyPress("s"))
	assert.NoError(t, m.err)
	assert.Equal(t, id, m.tracker.Active().ID)
}

func TestQuitWithoutSession(t *testing.T) {
	m, _, _ := newTestModel(t, tracker.State{})

	_, cmd := m.Update(keyPress("q"))
	assert.True(t, isQuit(cmd))
}

func TestQuitWithActiveSessionAsks(t *testing.T) {
	m, _, _ := newTestModel(t, tracker.State{
		Active: &models.Session{ID: "s1", StartTime: 500},
	})

	assert.True(t, m.ticker.Running())

	_, cmd := m.Update(keyPress("q"))
	assert.False(t, isQuit(cmd))
	assert.True(t, m.confirmQuit)
	assert.Contains(t, m.View(), "keeps running")

	_, cmd = m.Update(keyPress("n"))
	assert.False(t, isQuit(cmd))
	assert.False(t, m.confirmQuit)

	m.Update(keyPress("q"))

	_, cmd = m.Update(keyPress("y"))
	assert.True(t, isQuit(cmd))
	assert.False(t, m.ticker.Running())

	// quitting the view never stops the session
	assert.NotNil(t, m.tracker.Active())
}

type failingPersister struct{}

func (failingPersister) Persist(context.Context, *tracker.State, tracker.Change) error {
	return errors.New("disk full")
}

func TestPersistErrorIsShown(t *testing.T) {
	c := &clock{ms: 1000}
	tr := tracker.New(
		tracker.State{},
		tracker.WithClock(c.now),
		tracker.WithPersister(failingPersister{}),
	)

	ticker := tracker.NewTicker(time.Hour, func(time.Time) {})
	t.Cleanup(ticker.Stop)

	m := New(context.Background(), tr, ticker, Options{})

	m.Update(keyPress("s"))
	assert.Contains(t, m.View(), "disk full")
}

func TestProjectNameShown(t *testing.T) {
	m, _, _ := newTestModel(t, tracker.State{
		Active: &models.Session{
			ID:        "s1",
			StartTime: 500,
			ProjectID: models.Ptr("project-1"),
		},
		Projects: []models.Project{{ID: "project-1", Name: "Website"}},
	})

	assert.Contains(t, m.View(), "project Website")
}
