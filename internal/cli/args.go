package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s accepts no arguments, received %q\n\nUsage: %s",
			linuxsim.ErrUsage, cmd.CommandPath(), args, cmd.UseLine())
	}
	return nil
}
