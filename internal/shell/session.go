package shell

import "github.com/vvka-141/linuxsim/pkg/linuxsim"

// Session pairs a filesystem with a working directory and runs lines
// against it, applying directory changes as a terminal would.
// A Session is not safe for concurrent use; callers that share one
// serialize access.
type Session struct {
	in  *Interpreter
	fs  FileSystem
	cwd string
}

// NewSession starts a session in the environment's home directory, or at
// root when the home directory does not exist.
func NewSession(in *Interpreter, fsys FileSystem) *Session {
	cwd := in.env.Home
	if !fsys.IsDirectory(cwd) {
		cwd = linuxsim.RootPath
	}
	return &Session{in: in, fs: fsys, cwd: cwd}
}

// Run executes one line and moves to the result's NewDir, if any.
func (s *Session) Run(line string) linuxsim.Result {
	res := s.in.Execute(line, s.cwd, s.fs)
	if res.NewDir != "" {
		s.cwd = res.NewDir
	}
	return res
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Prompt renders the prompt for the current directory.
func (s *Session) Prompt() string {
	return s.in.env.Prompt(s.cwd)
}

// FileSystem returns the filesystem the session operates on.
func (s *Session) FileSystem() FileSystem {
	return s.fs
}

// Interpreter returns the interpreter lines are dispatched to.
func (s *Session) Interpreter() *Interpreter {
	return s.in
}
