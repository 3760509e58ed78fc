package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/linuxsim/internal/logging"
	"github.com/vvka-141/linuxsim/internal/tui"
)

// errCommandsFailed is returned by line mode when any command failed.
var errCommandsFailed = errors.New("one or more commands failed")

type shellFlagValues struct {
	identity identityFlags
	echo     bool
	logFile  string
}

var shellFlags shellFlagValues

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell session",
	Long: `Start a shell session on a freshly seeded in-memory filesystem.

On a terminal this opens the full-screen terminal with history (↑/↓) and
Tab completion. When stdin is not a terminal, or LINUXSIM_NON_INTERACTIVE=1,
CI or NO_COLOR is set, commands are read line by line from stdin instead.`,
	Example: `  linuxsim shell
  linuxsim shell --user root --hostname lab
  printf 'cd /tmp\ntouch a\nls\n' | linuxsim shell --echo`,
	Args: noArgs,
	RunE: runShell,
}

func init() {
	addIdentityFlags(shellCmd, &shellFlags.identity)
	shellCmd.Flags().BoolVar(&shellFlags.echo, "echo", false, "In line mode, print the prompt and each command before its output")
	shellCmd.Flags().StringVar(&shellFlags.logFile, "log-file", "", "In terminal mode, write log output to this file")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	interactive := tui.IsInteractive()

	logOut := cmd.ErrOrStderr()
	if interactive {
		// The terminal owns the screen; logs go to a file or nowhere.
		logOut = io.Discard
		if shellFlags.logFile != "" {
			f, err := os.OpenFile(shellFlags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
	}
	logger := logging.NewConsoleLoggerWithWriter(logOut, verbose)

	cfg, err := loadConfig(getDirFlag(cmd), shellFlags.identity, logger)
	if err != nil {
		return err
	}
	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	if interactive {
		logger.Verbose("starting terminal as %s@%s", cfg.User, cfg.Hostname)
		final, err := tui.Run(commandContext(cmd), session)
		if err != nil {
			return err
		}
		logger.Verbose("terminal closed after %d commands", len(final.History()))
		return nil
	}

	failed, err := tui.RunLines(commandContext(cmd), session, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), shellFlags.echo)
	if err != nil {
		return err
	}
	if failed {
		return errCommandsFailed
	}
	return nil
}
