package app

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/prompt"
	"github.com/ayoisaiah/stint/internal/timeutil"
)

const (
	nounSessions = "sessions"
	nounProjects = "projects"

	noSessionsMsg = "No sessions found"
)

type sessionFilter struct {
	since     time.Time
	until     time.Time
	projectID string
}

func newSessionFilter(ctx *cli.Context) (sessionFilter, error) {
	var (
		f   sessionFilter
		err error
	)

	now := time.Now()

	if s := ctx.String("since"); s != "" {
		f.since, err = timeutil.FromStr(s, now)
		if err != nil {
			return f, errInvalidDate.Fmt("since").Wrap(err)
		}
	}

	if s := ctx.String("until"); s != "" {
		f.until, err = timeutil.FromStr(s, now)
		if err != nil {
			return f, errInvalidDate.Fmt("until").Wrap(err)
		}
	}

	f.projectID = ctx.String("project")

	return f, nil
}

func (f sessionFilter) match(s *models.Session) bool {
	if !f.since.IsZero() && s.StartTime < models.Millis(f.since) {
		return false
	}

	if !f.until.IsZero() && s.StartTime > models.Millis(f.until) {
		return false
	}

	if f.projectID != "" && !s.AssignedTo(f.projectID) {
		return false
	}

	return true
}

// sortSessions orders sessions by start time, most recent first.
func sortSessions(sessions []models.Session) {
	slices.SortStableFunc(sessions, func(a, b models.Session) int {
		switch {
		case a.StartTime > b.StartTime:
			return -1
		case a.StartTime < b.StartTime:
			return 1
		default:
			return 0
		}
	})
}

type sessionJSON struct {
	models.Session
	EffectiveDuration int64 `json:"effectiveDuration"`
}

func listSessionsAction(ctx *cli.Context, e *env) error {
	filter, err := newSessionFilter(ctx)
	if err != nil {
		return err
	}

	sessions := slices.DeleteFunc(e.tracker.Sessions(), func(s models.Session) bool {
		return !filter.match(&s)
	})

	sortSessions(sessions)

	if ctx.Bool("json") {
		out := make([]sessionJSON, len(sessions))
		for i := range sessions {
			out[i] = sessionJSON{
				Session:           sessions[i],
				EffectiveDuration: accounting.Effective(&sessions[i]),
			}
		}

		b, err := json.Marshal(out)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.out, string(b))

		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	return printSessionsTable(e.out, sessions, e.projectNames(), e.cfg.Display.DateFormat)
}

func deleteSessionsAction(ctx *cli.Context, e *env) error {
	sessions := e.tracker.Sessions()
	sortSessions(sessions)

	options := make([]prompt.Option[string], len(sessions))
	for i := range sessions {
		s := &sessions[i]

		options[i] = prompt.Option[string]{
			Value: s.ID,
			Label: fmt.Sprintf(
				"%s  %s",
				timeutil.FormatDate(s.StartTime, e.cfg.Display.DateFormat),
				timeutil.FormatDuration(accounting.Effective(s)),
			),
		}
	}

	return bulkDelete(
		e,
		nounSessions,
		ctx.Args().Slice(),
		ctx.Bool("all"),
		options,
		func(ids []string) error {
			return e.tracker.DeleteSessions(ctx.Context, ids)
		},
	)
}

func assignSessionAction(ctx *cli.Context, e *env) error {
	sessionID := ctx.Args().Get(0)
	if sessionID == "" {
		return errMissingArgument.Fmt("SESSION_ID")
	}

	projectID := ctx.Args().Get(1)

	var project *models.Project

	if projectID != "" {
		p, ok := e.tracker.Project(projectID)
		if !ok {
			return errProjectNotFound.Fmt(projectID)
		}

		project = p
	}

	if err := e.tracker.AssignSession(ctx.Context, sessionID, projectID); err != nil {
		return err
	}

	if project == nil {
		pterm.Success.Printfln("Session %s is no longer assigned to a project", sessionID)
		return nil
	}

	pterm.Success.Printfln("Session %s assigned to %s", sessionID, project.Name)

	return nil
}

// projectNames maps project ids to names.
func (e *env) projectNames() map[string]string {
	projects := e.tracker.Projects()

	names := make(map[string]string, len(projects))
	for i := range projects {
		names[projects[i].ID] = projects[i].Name
	}

	return names
}
