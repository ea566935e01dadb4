package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/stint/internal/models"
)

func TestAddProject(t *testing.T) {
	ctx := context.Background()
	tr, _, rec := newTestTracker(t, State{})

	_, err := tr.AddProject(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyProjectName)
	assert.Empty(t, tr.Projects())
	assert.Empty(t, rec.changes)

	first, err := tr.AddProject(ctx, "  Website  ")
	require.NoError(t, err)
	assert.Equal(t, "Website", first.Name)
	assert.False(t, first.IsFinalized)
	assert.Nil(t, first.FinalizedTotalDuration)

	second, err := tr.AddProject(ctx, "Backend")
	require.NoError(t, err)

	projects := tr.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID, "new projects are prepended")
	assert.Equal(t, first.ID, projects[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDeleteProjectsUnassignsSessions(t *testing.T) {
	ctx := context.Background()
	tr, _, rec := newTestTracker(t, State{
		Active: &models.Session{ID: "live", StartTime: 50, ProjectID: models.Ptr("p1")},
		Completed: []models.Session{
			completed("a", 1, 2, 0, "p1"),
			completed("b", 3, 4, 0, "p2"),
			completed("c", 5, 6, 0, "p3"),
			completed("d", 7, 8, 0, ""),
		},
		Projects: []models.Project{
			{ID: "p1", Name: "One"},
			{ID: "p2", Name: "Two"},
			{ID: "p3", Name: "Three"},
		},
	})

	require.NoError(t, tr.DeleteProjects(ctx, []string{}))
	assert.Empty(t, rec.changes)

	require.NoError(t, tr.DeleteProjects(ctx, []string{"p1", "p2"}))

	projects := tr.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "p3", projects[0].ID)

	sessions := tr.Sessions()
	require.Len(t, sessions, 4, "sessions are never deleted")
	assert.Nil(t, sessions[0].ProjectID)
	assert.Nil(t, sessions[1].ProjectID)
	assert.Equal(t, "p3", *sessions[2].ProjectID)
	assert.Nil(t, sessions[3].ProjectID)
	assert.Nil(t, tr.Active().ProjectID)

	assert.Equal(
		t,
		[]Change{ProjectsChanged | SessionsChanged | ActiveChanged},
		rec.changes,
	)
}

func TestAssignSession(t *testing.T) {
	ctx := context.Background()
	tr, _, _ := newTestTracker(t, State{
		Completed: []models.Session{completed("a", 1, 2, 0, "")},
		Projects: []models.Project{
			{ID: "open", Name: "Open"},
			{ID: "done", Name: "Done", IsFinalized: true, FinalizedTotalDuration: models.Ptr[int64](0)},
		},
	})

	require.NoError(t, tr.AssignSession(ctx, "a", "open"))

	s, _ := tr.Session("a")
	assert.Equal(t, "open", *s.ProjectID)

	err := tr.AssignSession(ctx, "a", "done")
	assert.ErrorIs(t, err, ErrProjectFinalized)
	assert.EqualError(t, err, `sessions cannot be assigned to the finalized project "Done"`)

	s, _ = tr.Session("a")
	assert.Equal(t, "open", *s.ProjectID, "rejected assignment leaves the session unchanged")

	require.NoError(t, tr.AssignSession(ctx, "a", ""))

	s, _ = tr.Session("a")
	assert.Nil(t, s.ProjectID)

	assert.ErrorIs(t, tr.AssignSession(ctx, "missing", "open"), ErrSessionNotFound)
}

func TestFinalizeProject(t *testing.T) {
	ctx := context.Background()
	tr, clock, _ := newTestTracker(t, State{
		Completed: []models.Session{
			completed("a", 1000, 9000, 2000, "P"),
			completed("b", 10000, 14000, 0, "P"),
			completed("c", 20000, 119999, 0, ""),
		},
		Projects: []models.Project{{ID: "P", Name: "Website"}},
	})

	require.NoError(t, tr.FinalizeProject(ctx, "P"))

	p, ok := tr.Project("P")
	require.True(t, ok)
	assert.True(t, p.IsFinalized)
	require.NotNil(t, p.FinalizedTotalDuration)
	assert.Equal(t, int64(10000), *p.FinalizedTotalDuration)
	assert.Equal(t, int64(10000), tr.ProjectDuration("P"))

	// new work cannot reach a finalized project
	clock.ms = 200000
	_, err := tr.Start(ctx)
	require.NoError(t, err)

	clock.ms = 205000
	stopped, err := tr.Stop(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, tr.AssignSession(ctx, stopped.ID, "P"), ErrProjectFinalized)
	assert.Equal(t, int64(10000), tr.ProjectDuration("P"))

	// reopening restores the dynamic total, re-finalizing recomputes it
	require.NoError(t, tr.ReopenProject(ctx, "P"))

	p, _ = tr.Project("P")
	assert.False(t, p.IsFinalized)
	assert.Nil(t, p.FinalizedTotalDuration)

	require.NoError(t, tr.AssignSession(ctx, stopped.ID, "P"))
	assert.Equal(t, int64(15000), tr.ProjectDuration("P"))

	require.NoError(t, tr.FinalizeProject(ctx, "P"))
	require.NoError(t, tr.FinalizeProject(ctx, "P"))

	p, _ = tr.Project("P")
	assert.Equal(t, int64(15000), *p.FinalizedTotalDuration, "finalizing twice must not accumulate")
}

func TestFinalizeSkipsInvalidSessions(t *testing.T) {
	ctx := context.Background()
	tr, _, _ := newTestTracker(t, State{
		Completed: []models.Session{
			completed("a", 1000, 9000, 2000, "P"),
			completed("bad", 9000, 1000, 0, "P"),
		},
		Projects: []models.Project{{ID: "P", Name: "Website"}},
	})

	require.NoError(t, tr.FinalizeProject(ctx, "P"))

	p, _ := tr.Project("P")
	assert.Equal(t, int64(6000), *p.FinalizedTotalDuration)
}

func TestUnknownProjectNoops(t *testing.T) {
	ctx := context.Background()
	tr, _, rec := newTestTracker(t, State{})

	require.NoError(t, tr.FinalizeProject(ctx, "missing"))
	require.NoError(t, tr.ReopenProject(ctx, "missing"))

	assert.Empty(t, rec.changes)
	assert.Equal(t, int64(0), tr.ProjectDuration("missing"))
}
