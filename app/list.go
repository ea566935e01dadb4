package app

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/timeutil"
	"github.com/ayoisaiah/stint/internal/ui"
)

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(
	w io.Writer,
	sessions []models.Session,
	projectNames map[string]string,
	dateFormat string,
) error {
	tableBody := make([][]string, 0, len(sessions)+1)

	tableBody = append(tableBody, []string{
		"#", "ID", "START", "END", "DURATION", "PROJECT",
	})

	for i := range sessions {
		sess := &sessions[i]

		endDate := ""
		if sess.EndTime != nil {
			endDate = timeutil.FormatDate(*sess.EndTime, dateFormat)
		}

		project := ""
		if sess.ProjectID != nil {
			project = projectNames[*sess.ProjectID]
			if project == "" {
				project = ui.Red(*sess.ProjectID)
			}
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			sess.ID,
			timeutil.FormatDate(sess.StartTime, dateFormat),
			endDate,
			timeutil.FormatDuration(accounting.Effective(sess)),
			project,
		})
	}

	return ui.PrintTable(w, tableBody)
}

// printProjectsTable prints a project table to the command-line.
func printProjectsTable(w io.Writer, rows []projectJSON) error {
	tableBody := make([][]string, 0, len(rows)+1)

	tableBody = append(tableBody, []string{
		"#", "ID", "NAME", "STATUS", "SESSIONS", "TOTAL",
	})

	for i := range rows {
		status := ui.Green("active")
		if rows[i].IsFinalized {
			status = ui.Magenta("finalized")
		}

		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			rows[i].ID,
			ui.Highlight(rows[i].Name),
			status,
			fmt.Sprintf("%d", rows[i].Sessions),
			timeutil.FormatDuration(rows[i].TotalDuration),
		})
	}

	return ui.PrintTable(w, tableBody)
}
