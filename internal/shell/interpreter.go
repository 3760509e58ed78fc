// Package shell interprets LinuxSim command lines against a virtual
// filesystem.
//
// The interpreter keeps no session state. Callers pass the working
// directory in and apply Result.NewDir themselves:
//
//	res := shell.Execute(line, cwd, fsys)
//	if res.NewDir != "" {
//	    cwd = res.NewDir
//	}
package shell

import (
	"sort"
	"strings"

	"github.com/vvka-141/linuxsim/internal/logging"
	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// FileSystem is the part of *vfs.FileSystem the commands use.
type FileSystem interface {
	Exists(path string) bool
	IsDirectory(path string) bool
	ListDir(path string) ([]string, error)
	Stat(path string) (vfs.FileInfo, error)
	Mkdir(path string) error
	MkdirAll(path string) error
	Touch(path string) error
	ReadFile(path string) (string, error)
	WriteFile(path, content string) error
	Rm(path string) error
	Rmdir(path string, recursive bool) error
	Walk(path string, fn vfs.WalkFunc) error
}

// invocation is everything a handler gets for one command line.
type invocation struct {
	args []string
	cwd  string
	fs   FileSystem
}

// resolve turns a path argument into an absolute path.
func (inv invocation) resolve(arg string) string {
	return vfs.ResolvePath(arg, inv.cwd)
}

type handler func(inv invocation) linuxsim.Result

type command struct {
	name    string
	usage   string
	summary string
	run     handler
}

// Interpreter dispatches command lines to built-in commands.
type Interpreter struct {
	env      Environment
	logger   linuxsim.Logger
	commands map[string]command
	order    []string
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger dispatches are reported to.
func WithLogger(l linuxsim.Logger) Option {
	return func(in *Interpreter) {
		in.logger = l
	}
}

// New creates an interpreter for env. Zero fields of env take defaults.
func New(env Environment, opts ...Option) *Interpreter {
	in := &Interpreter{
		env:    env.withDefaults(),
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.register()
	return in
}

func (in *Interpreter) register() {
	builtins := []command{
		{"cd", "cd [directory]", "Change current directory", in.cd},
		{"ls", "ls [-a] [-l] [directory]", "List directory contents", in.ls},
		{"pwd", "pwd", "Print working directory", in.pwd},
		{"tree", "tree [-a] [directory]", "Show a directory tree", in.tree},
		{"mkdir", "mkdir [-p] directory...", "Create directories", in.mkdir},
		{"touch", "touch file...", "Create empty files", in.touch},
		{"cat", "cat file...", "Display file contents", in.cat},
		{"echo", "echo [text] [> file]", "Display text or write it to a file", in.echo},
		{"rm", "rm [-r] [-f] path...", "Remove files or directories", in.rm},
		{"rmdir", "rmdir directory...", "Remove empty directories", in.rmdir},
		{"clear", "clear", "Clear the terminal", in.clear},
		{"whoami", "whoami", "Display current user", in.whoami},
		{"hostname", "hostname", "Display the machine name", in.hostname},
		{"date", "date", "Display current date", in.date},
		{"uname", "uname [-a]", "Display system information", in.uname},
		{"ping", "ping host", "Check whether a host is reachable", in.ping},
		{"help", "help", "Display this help message", in.help},
		{"exit", "exit", "End the session", in.exit},
	}

	in.commands = make(map[string]command, len(builtins))
	for _, c := range builtins {
		in.commands[c.name] = c
		in.order = append(in.order, c.name)
	}
}

// Environment returns the machine description the interpreter runs with.
func (in *Interpreter) Environment() Environment {
	return in.env
}

// Commands returns the built-in command names, sorted.
func (in *Interpreter) Commands() []string {
	names := make([]string, len(in.order))
	copy(names, in.order)
	sort.Strings(names)
	return names
}

// Execute runs one command line. It never panics and never returns an
// error: every failure is reported as error-classified output.
func (in *Interpreter) Execute(line, cwd string, fsys FileSystem) (res linuxsim.Result) {
	args := Tokenize(line)
	if len(args) == 0 {
		return res
	}

	name := strings.ToLower(args[0])
	cmd, ok := in.commands[name]
	if !ok {
		in.logger.Verbose("unknown command %q", name)
		res.Fail("Command not found: %s", name)
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			in.logger.Error("%s panicked: %v", name, r)
			res = linuxsim.Result{}
			res.Fail("%s: internal error", name)
		}
	}()

	in.logger.Verbose("exec %s %v (cwd=%s)", name, args[1:], cwd)
	return cmd.run(invocation{args: args, cwd: cwd, fs: fsys})
}

var defaultInterpreter = New(DefaultEnvironment())

// Execute runs line with the stock environment.
func Execute(line, cwd string, fsys FileSystem) linuxsim.Result {
	return defaultInterpreter.Execute(line, cwd, fsys)
}

// Tokenize splits a command line on whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// IsBlank reports whether line contains no command. Front ends skip such
// lines entirely and keep them out of history.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// splitFlags separates "-x" style tokens from operands. A lone "-" is an
// operand.
func splitFlags(args []string) (flags string, operands []string) {
	var b strings.Builder
	for _, a := range args {
		if len(a) > 1 && strings.HasPrefix(a, "-") {
			b.WriteString(a[1:])
			continue
		}
		operands = append(operands, a)
	}
	return b.String(), operands
}
