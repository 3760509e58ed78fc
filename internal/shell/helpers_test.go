package shell

import (
	"testing"
	"time"

	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

var fixedNow = time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)

// session plays the caller's role: it owns cwd and applies NewDir.
type session struct {
	t   *testing.T
	in  *Interpreter
	fs  *vfs.FileSystem
	cwd string
}

func newSession(t *testing.T) *session {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	return &session{
		t:   t,
		in:  New(Environment{Now: clock}),
		fs:  vfs.NewDefault(vfs.WithClock(clock)),
		cwd: linuxsim.DefaultHome,
	}
}

func (s *session) run(line string) linuxsim.Result {
	s.t.Helper()
	res := s.in.Execute(line, s.cwd, s.fs)
	if res.NewDir != "" {
		s.cwd = res.NewDir
	}
	return res
}
