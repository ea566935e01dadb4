// Package persist mirrors the tracker state to a key-value store. Loading is
// forgiving: every key is validated on its own and a corrupt value is
// dropped from the store instead of failing startup.
package persist

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/stint/internal/apperr"
	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/tracker"
	"github.com/ayoisaiah/stint/store"
)

// Storage keys. The suffix is bumped whenever the payload shape changes.
const (
	KeyActiveSession     = "activeSession_v1"
	KeyCompletedSessions = "completedSessions_v1"
	KeyProjects          = "projects_v1"
)

var (
	errReadKey = &apperr.Error{
		Message: "unable to read %s from the data store",
	}

	errWriteKey = &apperr.Error{
		Message: "unable to write %s to the data store",
	}
)

type (
	// Adapter loads and saves the tracker state. It implements
	// tracker.Persister.
	Adapter struct {
		store  store.Store
		log    *slog.Logger
		now    func() time.Time
		newID  func() string
		loaded atomic.Bool
	}

	// Option configures an Adapter.
	Option func(*Adapter)
)

// WithClock overrides the time used for backfilled start times.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

// WithIDGenerator overrides the generator used for backfilled ids.
func WithIDGenerator(fn func() string) Option {
	return func(a *Adapter) {
		a.newID = fn
	}
}

// WithLogger sets the logger that receives load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		a.log = l
	}
}

// New returns an Adapter backed by s.
func New(s store.Store, opts ...Option) *Adapter {
	a := &Adapter{
		store: s,
		log:   slog.Default(),
		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Loaded reports whether Load has completed.
func (a *Adapter) Loaded() bool {
	return a.loaded.Load()
}

// Load reads and sanitizes the persisted state. Corrupt values are removed
// from the store. Only store failures are returned: in that case nothing is
// marked as loaded and later saves remain disabled.
func (a *Adapter) Load(ctx context.Context) (tracker.State, error) {
	var (
		state tracker.State
		err   error
	)

	state.Active, err = a.loadActive(ctx)
	if err != nil {
		return tracker.State{}, err
	}

	state.Completed, err = a.loadCompleted(ctx)
	if err != nil {
		return tracker.State{}, err
	}

	state.Projects, err = a.loadProjects(ctx)
	if err != nil {
		return tracker.State{}, err
	}

	a.loaded.Store(true)

	return state, nil
}

// Persist writes the changed parts of s. It does nothing until Load has
// completed so that an empty initial state never overwrites stored data.
func (a *Adapter) Persist(
	ctx context.Context,
	s *tracker.State,
	changed tracker.Change,
) error {
	if !a.Loaded() {
		a.log.Debug("skipping save before load", slog.Any("change", changed))
		return nil
	}

	if changed.Has(tracker.ActiveChanged) {
		if err := a.saveActive(ctx, s.Active); err != nil {
			return err
		}
	}

	if changed.Has(tracker.SessionsChanged) {
		sessions := s.Completed
		if sessions == nil {
			sessions = []models.Session{}
		}

		if err := a.write(ctx, KeyCompletedSessions, sessions); err != nil {
			return err
		}
	}

	if changed.Has(tracker.ProjectsChanged) {
		projects := s.Projects
		if projects == nil {
			projects = []models.Project{}
		}

		if err := a.write(ctx, KeyProjects, projects); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) saveActive(ctx context.Context, s *models.Session) error {
	if s == nil {
		err := a.store.Remove(ctx, KeyActiveSession)
		if err != nil {
			return errWriteKey.Fmt(KeyActiveSession).Wrap(err)
		}

		return nil
	}

	return a.write(ctx, KeyActiveSession, s)
}

func (a *Adapter) write(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errWriteKey.Fmt(key).Wrap(err)
	}

	err = a.store.Set(ctx, key, string(b))
	if err != nil {
		return errWriteKey.Fmt(key).Wrap(err)
	}

	return nil
}

// read returns the stored value, or "" if the key is missing.
func (a *Adapter) read(ctx context.Context, key string) (string, error) {
	v, _, err := a.store.Get(ctx, key)
	if err != nil {
		return "", errReadKey.Fmt(key).Wrap(err)
	}

	return v, nil
}

// discard removes a corrupt value. Failing to remove it is not fatal since
// the value is validated again on the next load.
func (a *Adapter) discard(ctx context.Context, key, reason string) {
	a.log.Warn(
		"discarding corrupt stored data",
		slog.String("key", key),
		slog.String("reason", reason),
	)

	if err := a.store.Remove(ctx, key); err != nil {
		a.log.Error(
			"unable to remove corrupt stored data",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (a *Adapter) loadActive(ctx context.Context) (*models.Session, error) {
	raw, err := a.read(ctx, KeyActiveSession)
	if err != nil || raw == "" {
		return nil, err
	}

	o := decodeObject(json.RawMessage(raw))

	id, okID := o.str("id")
	start, okStart := o.number("startTime")

	if o == nil || !okID || !okStart {
		a.discard(ctx, KeyActiveSession, "missing id or start time")
		return nil, nil
	}

	s := &models.Session{
		ID:        id,
		StartTime: start,
	}

	if projectID, ok := o.str("projectId"); ok {
		s.ProjectID = &projectID
	}

	if paused, ok := o.boolean("isPaused"); ok {
		s.IsPaused = paused
	}

	if ps, ok := o.number("pausedStartTime"); ok {
		s.PausedStartTime = &ps
	}

	if total, ok := o.number("totalPausedDuration"); ok && total > 0 {
		s.TotalPausedDuration = total
	}

	// a pause without a start can never be resumed
	if s.IsPaused && s.PausedStartTime == nil {
		a.log.Warn(
			"clearing pause without a start time",
			slog.String("session_id", s.ID),
		)

		s.IsPaused = false
	}

	if !s.IsPaused {
		s.PausedStartTime = nil
	}

	return s, nil
}

func (a *Adapter) loadCompleted(ctx context.Context) ([]models.Session, error) {
	raw, err := a.read(ctx, KeyCompletedSessions)
	if err != nil || raw == "" {
		return nil, err
	}

	elems, isNull, err := decodeArray([]byte(raw))
	if isNull {
		return nil, nil
	}

	if err != nil {
		a.discard(ctx, KeyCompletedSessions, "not an array")
		return nil, nil
	}

	sessions := make([]models.Session, 0, len(elems))

	for i, elem := range elems {
		o := decodeObject(elem)
		if o == nil {
			a.log.Warn("dropping stored session", slog.Int("index", i))
			continue
		}

		s := a.coerceSession(o)

		if !validCompleted(&s) {
			a.log.Warn(
				"dropping stored session with invalid timestamps",
				slog.String("session_id", s.ID),
			)

			continue
		}

		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (a *Adapter) coerceSession(o object) models.Session {
	var s models.Session

	id, _ := o.str("id")

	s.ID = strings.TrimSpace(id)
	if s.ID == "" {
		s.ID = "session-" + a.newID()
	}

	s.StartTime, _ = o.coerceNumber("startTime")
	if s.StartTime == 0 {
		s.StartTime = models.Millis(a.now())
	}

	if !o.isNull("endTime") {
		if end, ok := o.coerceNumber("endTime"); ok && end != 0 {
			s.EndTime = &end
		}
	}

	if projectID, ok := o.str("projectId"); ok {
		projectID = strings.TrimSpace(projectID)
		s.ProjectID = &projectID
	}

	if total, ok := o.number("totalPausedDuration"); ok {
		s.TotalPausedDuration = total
	}

	return s
}

func validCompleted(s *models.Session) bool {
	if s.StartTime <= 0 {
		return false
	}

	if s.EndTime == nil {
		return true
	}

	return *s.EndTime > 0 && *s.EndTime >= s.StartTime
}

func (a *Adapter) loadProjects(ctx context.Context) ([]models.Project, error) {
	raw, err := a.read(ctx, KeyProjects)
	if err != nil || raw == "" {
		return nil, err
	}

	elems, isNull, err := decodeArray([]byte(raw))
	if err != nil || isNull {
		a.discard(ctx, KeyProjects, "not an array")
		return nil, nil
	}

	projects := make([]models.Project, 0, len(elems))

	for i, elem := range elems {
		o := decodeObject(elem)

		id, okID := o.str("id")
		name, okName := o.str("name")

		if o == nil || !okID || !okName {
			a.log.Warn("dropping stored project", slog.Int("index", i))
			continue
		}

		p := models.Project{
			ID:   id,
			Name: name,
		}

		p.IsFinalized, _ = o.boolean("isFinalized")

		if total, ok := o.number("finalizedTotalDuration"); ok {
			p.FinalizedTotalDuration = &total
		}

		projects = append(projects, p)
	}

	return projects, nil
}
