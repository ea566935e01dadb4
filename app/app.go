package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stint/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the stint app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "stint",
		Usage: `
		Stint tracks the time you spend on your work, one session at a time.
		Sessions can be paused and resumed, and grouped into projects whose
		totals can be frozen once the work is done.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a new session",
				Action: withEnv(startAction),
			},
			{
				Name:   "pause",
				Usage:  "Pause the running session",
				Action: withEnv(pauseAction),
			},
			{
				Name:   "resume",
				Usage:  "Resume the paused session",
				Action: withEnv(resumeAction),
			},
			{
				Name:   "stop",
				Usage:  "Stop the active session and record it",
				Action: withEnv(stopAction),
			},
			{
				Name:   "status",
				Usage:  "Print the status of the active session",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(statusAction),
			},
			{
				Name:   "watch",
				Usage:  "Follow the active session live",
				Action: withEnv(watchAction),
			},
			{
				Name:    "sessions",
				Aliases: []string{"s"},
				Usage:   "Manage completed sessions",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List completed sessions, most recent first",
						Flags:  []cli.Flag{jsonFlag, sinceFlag, untilFlag, projectFlag},
						Action: withEnv(listSessionsAction),
					},
					{
						Name:      "delete",
						Usage:     "Delete completed sessions",
						ArgsUsage: "[ID...]",
						Flags:     []cli.Flag{allFlag},
						Action:    withEnv(deleteSessionsAction),
					},
					{
						Name:      "assign",
						Usage:     "Assign a session to a project, or unassign it when no project is given",
						ArgsUsage: "SESSION_ID [PROJECT_ID]",
						Action:    withEnv(assignSessionAction),
					},
				},
			},
			{
				Name:    "projects",
				Aliases: []string{"p"},
				Usage:   "Manage projects",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Create one or more projects",
						ArgsUsage: "NAME...",
						Action:    withEnv(addProjectsAction),
					},
					{
						Name:   "list",
						Usage:  "List projects with their total tracked time",
						Flags:  []cli.Flag{jsonFlag},
						Action: withEnv(listProjectsAction),
					},
					{
						Name:      "delete",
						Usage:     "Delete projects. Their sessions are kept and unassigned",
						ArgsUsage: "[ID...]",
						Flags:     []cli.Flag{allFlag},
						Action:    withEnv(deleteProjectsAction),
					},
					{
						Name:      "finalize",
						Usage:     "Freeze the total time of a project",
						ArgsUsage: "ID",
						Action:    withEnv(finalizeProjectAction),
					},
					{
						Name:      "reopen",
						Usage:     "Reopen a finalized project",
						ArgsUsage: "ID",
						Action:    withEnv(reopenProjectAction),
					},
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			storeFlag,
			noColorFlag,
			yesFlag,
			twentyFourHourFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
