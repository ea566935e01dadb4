package tracker

import (
	"context"
	"log/slog"
	"slices"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
)

// Status describes the active session slot.
type Status int

const (
	StatusNone Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "none"
	}
}

// Status returns the state of the active session.
func (t *Tracker) Status() Status {
	switch {
	case t.state.Active == nil:
		return StatusNone
	case t.state.Active.IsPaused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Start begins a new session. It fails if a session is already active.
func (t *Tracker) Start(ctx context.Context) (*models.Session, error) {
	if t.state.Active != nil {
		return nil, ErrSessionActive
	}

	t.state.Active = &models.Session{
		ID:        sessionIDPrefix + t.newID(),
		StartTime: t.Now(),
	}

	t.log.Debug("session started", slog.String("session_id", t.state.Active.ID))

	return t.state.Active.Clone(), t.commit(ctx, ActiveChanged)
}

// Pause opens a pause interval on the active session. It does nothing if
// there is no active session or it is already paused.
func (t *Tracker) Pause(ctx context.Context) error {
	sess := t.state.Active
	if sess == nil || sess.IsPaused {
		return nil
	}

	sess.IsPaused = true
	sess.PausedStartTime = models.Ptr(t.Now())

	return t.commit(ctx, ActiveChanged)
}

// Resume closes the open pause interval and adds its length to the
// accumulated pause time.
func (t *Tracker) Resume(ctx context.Context) error {
	sess := t.state.Active
	if sess == nil || !sess.IsPaused || sess.PausedStartTime == nil {
		return nil
	}

	sess.TotalPausedDuration += t.Now() - *sess.PausedStartTime
	sess.PausedStartTime = nil
	sess.IsPaused = false

	return t.commit(ctx, ActiveChanged)
}

// Stop ends the active session and moves it to the head of the completed
// sessions. A pause still open at this point counts as paused time. It
// returns nil if there was no active session.
func (t *Tracker) Stop(ctx context.Context) (*models.Session, error) {
	sess := t.state.Active
	if sess == nil {
		return nil, nil
	}

	now := t.Now()

	if sess.IsPaused && sess.PausedStartTime != nil {
		sess.TotalPausedDuration += now - *sess.PausedStartTime
	}

	sess.EndTime = models.Ptr(now)
	sess.IsPaused = false
	sess.PausedStartTime = nil

	t.state.Completed = slices.Insert(t.state.Completed, 0, *sess)
	t.state.Active = nil

	t.log.Debug(
		"session stopped",
		slog.String("session_id", sess.ID),
		slog.Int64("effective_ms", accounting.Effective(sess)),
	)

	return sess.Clone(), t.commit(ctx, ActiveChanged|SessionsChanged)
}

// Elapsed returns the live working time of the active session.
func (t *Tracker) Elapsed() int64 {
	return accounting.Elapsed(t.state.Active, t.Now())
}

// DeleteSessions removes the completed sessions with the given ids.
func (t *Tracker) DeleteSessions(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	t.state.Completed = slices.DeleteFunc(
		t.state.Completed,
		func(s models.Session) bool {
			_, ok := set[s.ID]
			return ok
		},
	)

	return t.commit(ctx, SessionsChanged)
}
