package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/linuxsim/internal/tui"
)

type execFlagValues struct {
	identity identityFlags
	echo     bool
}

var execFlags execFlagValues

var execCmd = &cobra.Command{
	Use:   "exec [command line]",
	Short: "Run commands on a fresh filesystem and exit",
	Long: `Run one command line, given as arguments, or one command per line read
from stdin when no arguments are given. Each invocation starts from a fresh
filesystem, so state does not carry over between runs.

Output goes to stdout, failed commands write to stderr, and the exit code is
1 if any command failed.`,
	Example: `  linuxsim exec ls -la /home/user
  linuxsim exec 'echo hello > /tmp/x.txt'
  linuxsim exec < script.txt`,
	RunE: runExec,
}

func init() {
	addIdentityFlags(execCmd, &execFlags.identity)
	execCmd.Flags().BoolVar(&execFlags.echo, "echo", false, "Print the prompt and each command before its output")
	// Flags after the command name belong to the simulated command.
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	logger := newLogger(getVerboseFlag(cmd), cmd.ErrOrStderr())

	cfg, err := loadConfig(getDirFlag(cmd), execFlags.identity, logger)
	if err != nil {
		return err
	}
	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, " ") + "\n")
	}

	failed, err := tui.RunLines(commandContext(cmd), session, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), execFlags.echo)
	if err != nil {
		return err
	}
	if failed {
		return errCommandsFailed
	}
	return nil
}
