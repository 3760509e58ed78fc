package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/linuxsim/internal/server"
	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/internal/vfs"
)

type serveFlagValues struct {
	identity    identityFlags
	addr        string
	ttl         time.Duration
	maxSessions int
}

var serveFlags serveFlagValues

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve shell sessions over HTTP",
	Long: `Serve isolated shell sessions over a JSON HTTP API.

Routes:
  GET    /health
  POST   /api/sessions                  create a session
  GET    /api/sessions/:id              session cwd and prompt
  POST   /api/sessions/:id/exec         run {"command": "..."}
  GET    /api/sessions/:id/complete     Tab candidates for ?input=
  GET    /api/sessions/:id/tree         every node of the filesystem
  DELETE /api/sessions/:id              close a session

Sessions idle longer than the TTL are closed automatically.`,
	Example: `  linuxsim serve
  linuxsim serve --addr 127.0.0.1:9000 --ttl 10m --max-sessions 50`,
	Args: noArgs,
	RunE: runServe,
}

func init() {
	addIdentityFlags(serveCmd, &serveFlags.identity)
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "Listen address (overrides config and LINUXSIM_ADDR)")
	serveCmd.Flags().DurationVar(&serveFlags.ttl, "ttl", 0, "Idle session timeout (overrides server.session_ttl)")
	serveCmd.Flags().IntVar(&serveFlags.maxSessions, "max-sessions", 0, "Maximum open sessions (overrides server.max_sessions)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(getVerboseFlag(cmd), cmd.ErrOrStderr())

	cfg, err := loadConfig(getDirFlag(cmd), serveFlags.identity, logger)
	if err != nil {
		return err
	}
	if serveFlags.addr != "" {
		cfg.Server.Addr = serveFlags.addr
	}
	ttl := cfg.SessionTTL()
	if serveFlags.ttl > 0 {
		ttl = serveFlags.ttl
	}
	maxSessions := cfg.Server.MaxSessions
	if serveFlags.maxSessions > 0 {
		maxSessions = serveFlags.maxSessions
	}

	interp := shell.New(cfg.Environment(), shell.WithLogger(logger))
	srv := server.New(interp, server.Options{
		Addr:        cfg.Server.Addr,
		SessionTTL:  ttl,
		MaxSessions: maxSessions,
		NewFS:       func() (*vfs.FileSystem, error) { return cfg.NewFileSystem() },
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
