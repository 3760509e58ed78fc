package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/linuxsim/internal/config"
	"github.com/vvka-141/linuxsim/internal/logging"
	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// identityFlags are the machine overrides shared by shell and exec.
type identityFlags struct {
	user     string
	hostname string
}

// loadConfig resolves configuration for dir.
// Priority (highest to lowest): flags > env (.env included) > linuxsim.yaml > defaults.
func loadConfig(dir string, ids identityFlags, logger linuxsim.Logger) (*config.Config, error) {
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err == nil {
		logger.Verbose("loaded %s", envPath)
	}

	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	cfg.ApplyEnv(os.LookupEnv)

	if ids.user != "" {
		cfg.User = ids.user
	}
	if ids.hostname != "" {
		cfg.Hostname = ids.hostname
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to errOut, which the TUI keeps off the screen it draws.
func newLogger(verbose bool, errOut io.Writer) linuxsim.Logger {
	return logging.NewConsoleLoggerWithWriter(errOut, verbose)
}

// newSession builds an interpreter and a fresh filesystem from cfg.
func newSession(cfg *config.Config, logger linuxsim.Logger) (*shell.Session, error) {
	fsys, err := cfg.NewFileSystem()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", linuxsim.ErrInvalidConfig, err)
	}
	interp := shell.New(cfg.Environment(), shell.WithLogger(logger))
	return shell.NewSession(interp, fsys), nil
}

func addIdentityFlags(cmd *cobra.Command, ids *identityFlags) {
	cmd.Flags().StringVar(&ids.user, "user", "", "Simulated login name (overrides config and LINUXSIM_USER)")
	cmd.Flags().StringVar(&ids.hostname, "hostname", "", "Simulated host name (overrides config and LINUXSIM_HOSTNAME)")
}
