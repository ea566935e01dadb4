package tracker

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
)

type fakeClock struct {
	ms int64
}

func (c *fakeClock) now() time.Time {
	return time.UnixMilli(c.ms)
}

type recorder struct {
	err     error
	changes []Change
}

func (r *recorder) Persist(_ context.Context, _ *State, c Change) error {
	r.changes = append(r.changes, c)
	return r.err
}

func sequentialIDs() func() string {
	var n int

	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func newTestTracker(
	t *testing.T,
	state State,
) (*Tracker, *fakeClock, *recorder) {
	t.Helper()

	clock := &fakeClock{}
	rec := &recorder{}

	tr := New(
		state,
		WithClock(clock.now),
		WithIDGenerator(sequentialIDs()),
		WithPersister(rec),
	)

	return tr, clock, rec
}

func completed(id string, start, end, paused int64, project string) models.Session {
	s := models.Session{
		ID:                  id,
		StartTime:           start,
		EndTime:             models.Ptr(end),
		TotalPausedDuration: paused,
	}

	if project != "" {
		s.ProjectID = models.Ptr(project)
	}

	return s
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	tr, clock, rec := newTestTracker(t, State{})

	clock.ms = 1000
	started, err := tr.Start(ctx)
	require.NoError(t, err)

	want := &models.Session{ID: "session-1", StartTime: 1000}
	if diff := cmp.Diff(want, started); diff != "" {
		t.Fatalf("unexpected session (-want +got):\n%s", diff)
	}

	assert.Equal(t, StatusRunning, tr.Status())

	clock.ms = 5000
	require.NoError(t, tr.Pause(ctx))
	assert.Equal(t, StatusPaused, tr.Status())
	assert.Equal(t, int64(4000), tr.Elapsed())

	clock.ms = 6000
	assert.Equal(t, int64(4000), tr.Elapsed(), "elapsed must not grow while paused")

	clock.ms = 7000
	require.NoError(t, tr.Resume(ctx))
	assert.Equal(t, int64(2000), tr.Active().TotalPausedDuration)

	clock.ms = 9000
	stopped, err := tr.Stop(ctx)
	require.NoError(t, err)

	assert.Equal(t, StatusNone, tr.Status())
	assert.Nil(t, tr.Active())
	assert.Equal(t, int64(2000), stopped.TotalPausedDuration)
	assert.Equal(t, int64(9000), *stopped.EndTime)
	assert.Equal(t, int64(6000), accounting.Effective(stopped))
	assert.False(t, stopped.IsPaused)
	assert.Nil(t, stopped.PausedStartTime)

	sessions := tr.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "session-1", sessions[0].ID)

	assert.Equal(t, []Change{
		ActiveChanged,
		ActiveChanged,
		ActiveChanged,
		ActiveChanged | SessionsChanged,
	}, rec.changes)
}

func TestStopWhilePaused(t *testing.T) {
	ctx := context.Background()
	tr, clock, _ := newTestTracker(t, State{})

	clock.ms = 1000
	_, err := tr.Start(ctx)
	require.NoError(t, err)

	clock.ms = 3000
	require.NoError(t, tr.Pause(ctx))

	clock.ms = 8000
	stopped, err := tr.Stop(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), stopped.TotalPausedDuration)
	assert.Equal(t, int64(2000), accounting.Effective(stopped))
}

func TestStopPrependsToCompleted(t *testing.T) {
	ctx := context.Background()
	tr, clock, _ := newTestTracker(t, State{
		Completed: []models.Session{completed("old", 10, 20, 0, "")},
	})

	clock.ms = 100
	_, err := tr.Start(ctx)
	require.NoError(t, err)

	clock.ms = 200
	_, err = tr.Stop(ctx)
	require.NoError(t, err)

	sessions := tr.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "session-1", sessions[0].ID)
	assert.Equal(t, "old", sessions[1].ID)
}

func TestStartWhileActiveIsRejected(t *testing.T) {
	ctx := context.Background()
	tr, clock, rec := newTestTracker(t, State{})

	clock.ms = 1000
	_, err := tr.Start(ctx)
	require.NoError(t, err)

	before := tr.Snapshot()
	calls := len(rec.changes)

	clock.ms = 2000
	_, err = tr.Start(ctx)
	assert.ErrorIs(t, err, ErrSessionActive)

	if diff := cmp.Diff(before, tr.Snapshot()); diff != "" {
		t.Fatalf("state changed after rejected start (-want +got):\n%s", diff)
	}

	assert.Len(t, rec.changes, calls)
}

func TestNoActiveSessionNoops(t *testing.T) {
	ctx := context.Background()
	tr, _, rec := newTestTracker(t, State{})

	require.NoError(t, tr.Pause(ctx))
	require.NoError(t, tr.Resume(ctx))

	stopped, err := tr.Stop(ctx)
	require.NoError(t, err)
	assert.Nil(t, stopped)

	assert.Equal(t, int64(0), tr.Elapsed())
	assert.Empty(t, rec.changes)
}

func TestPauseAndResumeAreIdempotent(t *testing.T) {
	ctx := context.Background()
	tr, clock, _ := newTestTracker(t, State{})

	clock.ms = 1000
	_, err := tr.Start(ctx)
	require.NoError(t, err)

	// resuming a running session does nothing
	require.NoError(t, tr.Resume(ctx))
	assert.Equal(t, int64(0), tr.Active().TotalPausedDuration)

	clock.ms = 2000
	require.NoError(t, tr.Pause(ctx))

	// a second pause must not move the pause start
	clock.ms = 3000
	require.NoError(t, tr.Pause(ctx))
	assert.Equal(t, int64(2000), *tr.Active().PausedStartTime)
}

func TestResumeWithoutPauseStartIsNoop(t *testing.T) {
	ctx := context.Background()
	tr, clock, _ := newTestTracker(t, State{
		Active: &models.Session{ID: "a", StartTime: 1000, IsPaused: true},
	})

	clock.ms = 5000
	require.NoError(t, tr.Resume(ctx))

	assert.Equal(t, StatusPaused, tr.Status())
	assert.Equal(t, int64(0), tr.Active().TotalPausedDuration)
}

func TestPausedTimeAccumulates(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		tr, clock, _ := newTestTracker(t, State{})

		clock.ms = 1000
		_, err := tr.Start(ctx)
		require.NoError(t, err)

		var (
			expected  int64
			openSince int64
		)

		steps := rng.Intn(20)

		for step := 0; step < steps; step++ {
			clock.ms += rng.Int63n(5000)

			if tr.Status() == StatusPaused {
				expected += clock.ms - openSince
				require.NoError(t, tr.Resume(ctx))
			} else {
				openSince = clock.ms
				require.NoError(t, tr.Pause(ctx))
			}

			assert.GreaterOrEqual(t, tr.Elapsed(), int64(0))
		}

		clock.ms += rng.Int63n(5000)

		if tr.Status() == StatusPaused {
			expected += clock.ms - openSince
		}

		stopped, err := tr.Stop(ctx)
		require.NoError(t, err)

		assert.Equal(t, expected, stopped.TotalPausedDuration)
		assert.Equal(
			t,
			(*stopped.EndTime-stopped.StartTime)-expected,
			accounting.Effective(stopped),
		)
	}
}

func TestPersistErrorIsReported(t *testing.T) {
	ctx := context.Background()
	tr, clock, rec := newTestTracker(t, State{})

	diskErr := errors.New("disk full")
	rec.err = diskErr

	clock.ms = 1000
	_, err := tr.Start(ctx)

	assert.ErrorIs(t, err, errPersist)
	assert.ErrorIs(t, err, diskErr)
	assert.NotNil(t, tr.Active(), "in-memory state is kept")
}

func TestDeleteSessions(t *testing.T) {
	ctx := context.Background()
	tr, _, rec := newTestTracker(t, State{
		Completed: []models.Session{
			completed("a", 1, 2, 0, ""),
			completed("b", 3, 4, 0, ""),
			completed("c", 5, 6, 0, ""),
		},
	})

	require.NoError(t, tr.DeleteSessions(ctx, nil))
	assert.Empty(t, rec.changes)

	require.NoError(t, tr.DeleteSessions(ctx, []string{"a", "c", "missing"}))

	sessions := tr.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "b", sessions[0].ID)
	assert.Equal(t, []Change{SessionsChanged}, rec.changes)
}

func TestSnapshotIsACopy(t *testing.T) {
	tr, _, _ := newTestTracker(t, State{
		Completed: []models.Session{completed("a", 1, 2, 0, "p")},
	})

	snap := tr.Snapshot()
	*snap.Completed[0].ProjectID = "q"

	s, ok := tr.Session("a")
	require.True(t, ok)
	assert.Equal(t, "p", *s.ProjectID)
}
