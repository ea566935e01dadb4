// Package tracker owns the in-memory application state: the active session,
// the completed sessions and the projects. Its methods are the only way to
// mutate that state, and every mutation is reported to a Persister.
package tracker

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
)

const (
	sessionIDPrefix = "session-"
	projectIDPrefix = "project-"
)

// State is the complete application state.
type State struct {
	Active *models.Session
	// Completed is ordered most recent first
	Completed []models.Session
	Projects  []models.Project
}

// Change is a bit set naming the parts of State that were modified.
type Change uint8

const (
	ActiveChanged Change = 1 << iota
	SessionsChanged
	ProjectsChanged
)

// Has reports whether c includes all of the bits in other.
func (c Change) Has(other Change) bool {
	return c&other == other
}

// Persister mirrors state changes to durable storage.
type Persister interface {
	Persist(ctx context.Context, s *State, changed Change) error
}

type (
	// Tracker is the state container.
	Tracker struct {
		persister Persister
		log       *slog.Logger
		now       func() time.Time
		newID     func() string
		state     State
	}

	// Option configures a Tracker.
	Option func(*Tracker)
)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithIDGenerator overrides the generator of unique identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(t *Tracker) {
		t.newID = fn
	}
}

// WithPersister registers the receiver of state changes.
func WithPersister(p Persister) Option {
	return func(t *Tracker) {
		t.persister = p
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = l
	}
}

// New returns a Tracker that takes ownership of state.
func New(state State, opts ...Option) *Tracker {
	t := &Tracker{
		state: state,
		now:   time.Now,
		newID: uuid.NewString,
		log:   slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Now returns the current time in milliseconds.
func (t *Tracker) Now() int64 {
	return models.Millis(t.now())
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() State {
	s := State{
		Completed: t.Sessions(),
		Projects:  t.Projects(),
	}

	if t.state.Active != nil {
		s.Active = t.state.Active.Clone()
	}

	return s
}

// Active returns a copy of the active session or nil if there is none.
func (t *Tracker) Active() *models.Session {
	if t.state.Active == nil {
		return nil
	}

	return t.state.Active.Clone()
}

// Sessions returns a copy of the completed sessions, most recent first.
func (t *Tracker) Sessions() []models.Session {
	sessions := make([]models.Session, len(t.state.Completed))

	for i := range t.state.Completed {
		sessions[i] = *t.state.Completed[i].Clone()
	}

	return sessions
}

// Projects returns a copy of the projects.
func (t *Tracker) Projects() []models.Project {
	projects := make([]models.Project, len(t.state.Projects))

	for i := range t.state.Projects {
		projects[i] = *t.state.Projects[i].Clone()
	}

	return projects
}

// Session returns a copy of the completed session with the given id.
func (t *Tracker) Session(id string) (*models.Session, bool) {
	i := t.sessionIndex(id)
	if i < 0 {
		return nil, false
	}

	return t.state.Completed[i].Clone(), true
}

// Project returns a copy of the project with the given id.
func (t *Tracker) Project(id string) (*models.Project, bool) {
	i := t.projectIndex(id)
	if i < 0 {
		return nil, false
	}

	return t.state.Projects[i].Clone(), true
}

// ProjectDuration returns the duration displayed for a project: frozen
// when finalized, recomputed from the completed sessions otherwise.
func (t *Tracker) ProjectDuration(id string) int64 {
	i := t.projectIndex(id)
	if i < 0 {
		return 0
	}

	p := &t.state.Projects[i]

	total, skipped := accounting.ProjectDuration(p, t.state.Completed)
	t.logSkipped(p.ID, skipped)

	return total
}

func (t *Tracker) sessionIndex(id string) int {
	return slices.IndexFunc(t.state.Completed, func(s models.Session) bool {
		return s.ID == id
	})
}

func (t *Tracker) projectIndex(id string) int {
	return slices.IndexFunc(t.state.Projects, func(p models.Project) bool {
		return p.ID == id
	})
}

func (t *Tracker) logSkipped(projectID string, skipped []string) {
	for _, id := range skipped {
		t.log.Warn(
			"skipping session with invalid timestamps",
			slog.String("session_id", id),
			slog.String("project_id", projectID),
		)
	}
}

// commit hands the modified parts of the state to the persister.
func (t *Tracker) commit(ctx context.Context, changed Change) error {
	if t.persister == nil || changed == 0 {
		return nil
	}

	err := t.persister.Persist(ctx, &t.state, changed)
	if err != nil {
		return errPersist.Wrap(err)
	}

	return nil
}
