package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = `  _     _                  ____  _
 | |   (_)_ __  _   ___  _/ ___|(_)_ __ ___
 | |   | | '_ \| | | \ \/ \___ \| | '_ ' _ \
 | |___| | | | | |_| |>  < ___) | | | | | | |
 |_____|_|_| |_|\__,_/_/\_\____/|_|_| |_| |_|`

var rootCmd = &cobra.Command{
	Use:   "linuxsim",
	Short: "A simulated Unix shell over an in-memory filesystem",
	Long: banner + `

linuxsim runs a small Unix-like shell against a filesystem that lives only in
memory. Nothing you do touches the real disk, and every session starts from
the same seeded tree.

Use it interactively (linuxsim shell), from scripts (linuxsim exec), or as an
HTTP service that hosts many isolated sessions (linuxsim serve).

Configuration is read from linuxsim.yaml in the --dir directory, then from
.env and LINUXSIM_* environment variables, then from flags.

Exit Codes:
  0  - Success
  1  - General error (a command failed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - HTTP server failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Directory containing linuxsim.yaml and .env")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getDirFlag(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
