// Package server exposes simulated shell sessions over HTTP.
//
// Every session owns a freshly seeded filesystem and a working directory.
// Clients create a session, post command lines to it and render the
// structured results themselves. Idle sessions are closed by a Janitor.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vvka-141/linuxsim/internal/logging"
	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. Zero values take defaults.
type Options struct {
	Addr        string
	SessionTTL  time.Duration
	MaxSessions int
	NewFS       FileSystemFactory
	Logger      linuxsim.Logger
}

// Server is the HTTP front end.
type Server struct {
	addr    string
	echo    *echo.Echo
	store   *SessionStore
	janitor *Janitor
	logger  linuxsim.Logger
}

// New wires a server around interp.
func New(interp *shell.Interpreter, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = linuxsim.DefaultServerAddr
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = linuxsim.DefaultSessionTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = linuxsim.DefaultMaxSessions
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}

	store := NewSessionStore(interp, opts.NewFS, opts.MaxSessions)
	return &Server{
		addr:    opts.Addr,
		echo:    SetupRouter(NewHandler(store), opts.Logger),
		store:   store,
		janitor: NewJanitor(store, opts.SessionTTL, 0, opts.Logger),
		logger:  opts.Logger,
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Store returns the session store.
func (s *Server) Store() *SessionStore {
	return s.store
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer func() {
		stopJanitor()
		s.janitor.Wait()
	}()
	s.janitor.Start(janitorCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening on %s", s.addr)
		errCh <- s.echo.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%w: %v", linuxsim.ErrServerFailed, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: shutdown: %v", linuxsim.ErrServerFailed, err)
	}
	return nil
}
