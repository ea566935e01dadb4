// Package notify tells the outside world that a session ended.
package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/stint/internal/accounting"
	"github.com/ayoisaiah/stint/internal/apperr"
	"github.com/ayoisaiah/stint/internal/models"
	"github.com/ayoisaiah/stint/internal/timeutil"
)

var errParseCmd = &apperr.Error{
	Message: "unable to parse settings.cmd option",
}

// notifier is swapped in tests.
var notifier = func(title, msg, iconPath string) error {
	return beeep.Notify(title, msg, iconPath)
}

// Desktop shows a desktop notification summarising a stopped session.
func Desktop(s *models.Session) error {
	// iconPath is empty if no icon is installed
	iconPath, _ := xdg.SearchDataFile(filepath.Join("stint", "icon.png"))

	msg := fmt.Sprintf(
		"Tracked %s",
		timeutil.FormatDuration(accounting.Effective(s)),
	)

	return notifier("Session stopped", msg, iconPath)
}

// SessionEnv describes a stopped session as environment variables.
func SessionEnv(s *models.Session) []string {
	env := []string{
		"STINT_SESSION_ID=" + s.ID,
		fmt.Sprintf("STINT_SESSION_START=%d", s.StartTime),
		fmt.Sprintf("STINT_SESSION_DURATION=%d", accounting.Effective(s)),
	}

	if s.EndTime != nil {
		env = append(env, fmt.Sprintf("STINT_SESSION_END=%d", *s.EndTime))
	}

	if s.ProjectID != nil {
		env = append(env, "STINT_PROJECT_ID="+*s.ProjectID)
	}

	return env
}

// RunCmd executes command with extra environment variables. The command is
// split using shell quoting rules but is not run through a shell.
func RunCmd(ctx context.Context, command string, env []string) error {
	if command == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.Run()
}
