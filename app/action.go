package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/notify"
	"github.com/ayoisaiah/stint/internal/osutil"
	"github.com/ayoisaiah/stint/internal/timeutil"
	"github.com/ayoisaiah/stint/internal/tracker"
	"github.com/ayoisaiah/stint/internal/ui"
	"github.com/ayoisaiah/stint/watch"
)

const (
	envNoColor      = "NO_COLOR"
	envStintNoColor = "STINT_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func startAction(ctx *cli.Context, e *env) error {
	s, err := e.tracker.Start(ctx.Context)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Session started at %s",
		timeutil.FormatDate(s.StartTime, e.cfg.Display.DateFormat),
	)

	return nil
}

func pauseAction(ctx *cli.Context, e *env) error {
	if e.tracker.Status() != tracker.StatusRunning {
		pterm.Info.Println("There is no running session to pause")
		return nil
	}

	if err := e.tracker.Pause(ctx.Context); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Session paused after %s",
		timeutil.FormatDuration(e.tracker.Elapsed()),
	)

	return nil
}

func resumeAction(ctx *cli.Context, e *env) error {
	if e.tracker.Status() != tracker.StatusPaused {
		pterm.Info.Println("There is no paused session to resume")
		return nil
	}

	if err := e.tracker.Resume(ctx.Context); err != nil {
		return err
	}

	pterm.Success.Println("Session resumed")

	return nil
}

func stopAction(ctx *cli.Context, e *env) error {
	s, err := e.tracker.Stop(ctx.Context)
	if err != nil {
		return err
	}

	if s == nil {
		pterm.Info.Println("There is no active session to stop")
		return nil
	}

	pterm.Success.Printfln(
		"Session %s stopped after %s",
		s.ID,
		timeutil.FormatDuration(accounting.Effective(s)),
	)

	afterStop(ctx, e, s)

	return nil
}

// afterStop runs the configured side effects of a stopped session. Their
// failures are reported but never fail the command.
func afterStop(ctx *cli.Context, e *env, s *models.Session) {
	if e.cfg.Notifications.Enabled {
		if err := notify.Desktop(s); err != nil {
			slog.WarnContext(
				ctx.Context,
				"unable to display notification",
				slog.Any("error", err),
			)
		}
	}

	if e.cfg.Settings.Cmd == "" {
		return
	}

	err := notify.RunCmd(ctx.Context, e.cfg.Settings.Cmd, notify.SessionEnv(s))
	if err != nil {
		slog.ErrorContext(
			ctx.Context,
			"session command failed",
			slog.String("cmd", e.cfg.Settings.Cmd),
			slog.Any("error", err),
		)

		pterm.Warning.Printfln("settings.cmd failed: %v", err)
	}
}

type statusOutput struct {
	Session *models.Session `json:"session"`
	Status  string          `json:"status"`
	Elapsed int64           `json:"elapsed"`
}

func statusAction(ctx *cli.Context, e *env) error {
	out := statusOutput{
		Status:  e.tracker.Status().String(),
		Session: e.tracker.Active(),
		Elapsed: e.tracker.Elapsed(),
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.out, string(b))

		return err
	}

	if out.Session == nil {
		pterm.Info.Println("There is no active session")
		return nil
	}

	status := ui.Green(out.Status)
	if e.tracker.Status() == tracker.StatusPaused {
		status = ui.Yellow(out.Status)
	}

	pterm.Info.Printfln(
		"Session %s is %s: %s elapsed since %s",
		out.Session.ID,
		status,
		timeutil.FormatDuration(out.Elapsed),
		timeutil.FormatDate(out.Session.StartTime, e.cfg.Display.DateFormat),
	)

	return nil
}

func watchAction(ctx *cli.Context, e *env) error {
	return watch.Run(ctx.Context, e.tracker, watch.Options{
		DateFormat:   e.cfg.Display.DateFormat,
		TickInterval: e.cfg.Watch.TickInterval,
		DarkTheme:    e.cfg.Display.DarkTheme,
		OnStop: func(s *models.Session) {
			afterStop(ctx, e, s)
		},
	})
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	_, paths, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx.Context, editor, paths.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STINT_NO_COLOR is set
	if _, exists := os.LookupEnv(envStintNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting stint")

	return nil
}
