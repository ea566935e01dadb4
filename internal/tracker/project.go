package tracker

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
)

// AddProject creates a project and places it first in the collection.
func (t *Tracker) AddProject(
	ctx context.Context,
	name string,
) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProjectName
	}

	p := models.Project{
		ID:   projectIDPrefix + t.newID(),
		Name: name,
	}

	t.state.Projects = slices.Insert(t.state.Projects, 0, p)

	return p.Clone(), t.commit(ctx, ProjectsChanged)
}

// DeleteProjects removes the given projects. Sessions that referenced them
// are unassigned, never deleted.
func (t *Tracker) DeleteProjects(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	referenced := func(s *models.Session) bool {
		if s.ProjectID == nil {
			return false
		}

		_, ok := set[*s.ProjectID]

		return ok
	}

	t.state.Projects = slices.DeleteFunc(
		t.state.Projects,
		func(p models.Project) bool {
			_, ok := set[p.ID]
			return ok
		},
	)

	changed := ProjectsChanged

	for i := range t.state.Completed {
		if referenced(&t.state.Completed[i]) {
			t.state.Completed[i].ProjectID = nil
			changed |= SessionsChanged
		}
	}

	if t.state.Active != nil && referenced(t.state.Active) {
		t.state.Active.ProjectID = nil
		changed |= ActiveChanged
	}

	return t.commit(ctx, changed)
}

// AssignSession assigns a completed session to a project. An empty
// projectID unassigns the session. Assigning to a finalized project is
// rejected and leaves the session unchanged.
func (t *Tracker) AssignSession(
	ctx context.Context,
	sessionID, projectID string,
) error {
	i := t.sessionIndex(sessionID)
	if i < 0 {
		return ErrSessionNotFound.Fmt(sessionID)
	}

	if projectID == "" {
		t.state.Completed[i].ProjectID = nil

		return t.commit(ctx, SessionsChanged)
	}

	if j := t.projectIndex(projectID); j >= 0 && t.state.Projects[j].IsFinalized {
		return ErrProjectFinalized.Fmt(t.state.Projects[j].Name)
	}

	t.state.Completed[i].ProjectID = models.Ptr(projectID)

	return t.commit(ctx, SessionsChanged)
}

// FinalizeProject freezes the project's aggregate duration. The total is
// always recomputed from the current completed sessions, so finalizing an
// already finalized project replaces the previous snapshot.
func (t *Tracker) FinalizeProject(ctx context.Context, id string) error {
	i := t.projectIndex(id)
	if i < 0 {
		return nil
	}

	total, skipped := accounting.ProjectTotal(id, t.state.Completed)
	t.logSkipped(id, skipped)

	p := &t.state.Projects[i]
	p.IsFinalized = true
	p.FinalizedTotalDuration = models.Ptr(total)

	t.log.Debug(
		"project finalized",
		slog.String("project_id", id),
		slog.Int64("total_ms", total),
	)

	return t.commit(ctx, ProjectsChanged)
}

// ReopenProject discards the frozen duration so that the project total is
// recomputed from its sessions again.
func (t *Tracker) ReopenProject(ctx context.Context, id string) error {
	i := t.projectIndex(id)
	if i < 0 {
		return nil
	}

	p := &t.state.Projects[i]
	p.IsFinalized = false
	p.FinalizedTotalDuration = nil

	return t.commit(ctx, ProjectsChanged)
}
