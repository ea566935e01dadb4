package app

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/prompt"
	"github.com/ayoisaiah/stint/internal/timeutil"
)

const noProjectsMsg = "No projects found. Create one with 'stint projects add NAME'"

// sortProjects puts active projects before finalized ones, each group in
// natural name order.
func sortProjects(projects []models.Project) {
	slices.SortStableFunc(projects, func(a, b models.Project) int {
		if a.IsFinalized != b.IsFinalized {
			if !a.IsFinalized {
				return -1
			}

			return 1
		}

		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})
}

type projectJSON struct {
	models.Project
	TotalDuration int64 `json:"totalDuration"`
	Sessions      int   `json:"sessions"`
}

func (e *env) projectRows() []projectJSON {
	projects := e.tracker.Projects()
	sortProjects(projects)

	sessions := e.tracker.Sessions()

	rows := make([]projectJSON, len(projects))
	for i := range projects {
		var count int

		for j := range sessions {
			if sessions[j].AssignedTo(projects[i].ID) {
				count++
			}
		}

		rows[i] = projectJSON{
			Project:       projects[i],
			TotalDuration: e.tracker.ProjectDuration(projects[i].ID),
			Sessions:      count,
		}
	}

	return rows
}

func addProjectsAction(ctx *cli.Context, e *env) error {
	names := ctx.Args().Slice()
	if len(names) == 0 {
		return errMissingArgument.Fmt("NAME")
	}

	for _, name := range names {
		p, err := e.tracker.AddProject(ctx.Context, name)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Created project %s (%s)", p.Name, p.ID)
	}

	return nil
}

func listProjectsAction(ctx *cli.Context, e *env) error {
	rows := e.projectRows()

	if ctx.Bool("json") {
		b, err := json.Marshal(rows)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.out, string(b))

		return err
	}

	if len(rows) == 0 {
		pterm.Info.Println(noProjectsMsg)
		return nil
	}

	return printProjectsTable(e.out, rows)
}

func deleteProjectsAction(ctx *cli.Context, e *env) error {
	rows := e.projectRows()

	options := make([]prompt.Option[string], len(rows))
	for i := range rows {
		options[i] = prompt.Option[string]{
			Value: rows[i].ID,
			Label: fmt.Sprintf(
				"%s  %s",
				rows[i].Name,
				timeutil.FormatDuration(rows[i].TotalDuration),
			),
		}
	}

	return bulkDelete(
		e,
		nounProjects,
		ctx.Args().Slice(),
		ctx.Bool("all"),
		options,
		func(ids []string) error {
			return e.tracker.DeleteProjects(ctx.Context, ids)
		},
	)
}

// lookupProject resolves the project named by the first argument.
func lookupProject(ctx *cli.Context, e *env) (*models.Project, error) {
	id := ctx.Args().First()
	if id == "" {
		return nil, errMissingArgument.Fmt("ID")
	}

	p, ok := e.tracker.Project(id)
	if !ok {
		return nil, errProjectNotFound.Fmt(id)
	}

	return p, nil
}

func finalizeProjectAction(ctx *cli.Context, e *env) error {
	p, err := lookupProject(ctx, e)
	if err != nil {
		return err
	}

	if err := e.tracker.FinalizeProject(ctx.Context, p.ID); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Project %s finalized with a total of %s",
		p.Name,
		timeutil.FormatDuration(e.tracker.ProjectDuration(p.ID)),
	)

	return nil
}

func reopenProjectAction(ctx *cli.Context, e *env) error {
	p, err := lookupProject(ctx, e)
	if err != nil {
		return err
	}

	if err := e.tracker.ReopenProject(ctx.Context, p.ID); err != nil {
		return err
	}

	pterm.Success.Printfln("Project %s reopened", p.Name)

	return nil
}
