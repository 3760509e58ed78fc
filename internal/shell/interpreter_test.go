package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linuxsim/internal/logging"
	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

func TestExecute_BlankInput(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\n"} {
		assert.True(t, IsBlank(line))
		res := Execute(line, "/", vfs.NewDefault())
		assert.True(t, res.Empty(), "blank input %q should produce nothing", line)
	}
	assert.False(t, IsBlank(" ls "))
}

func TestExecute_UnknownCommand(t *testing.T) {
	res := Execute("foo123", "/", vfs.NewDefault())

	assert.Equal(t, linuxsim.ClassError, res.Class)
	assert.Equal(t, []string{"Command not found: foo123"}, res.Text())
	assert.Empty(t, res.NewDir)
}

func TestExecute_DispatchIsCaseInsensitive(t *testing.T) {
	res := Execute("PWD", "/tmp", vfs.NewDefault())
	assert.Equal(t, linuxsim.ClassSuccess, res.Class)
	assert.Equal(t, []string{"/tmp"}, res.Text())
}

func TestExecute_DoesNotMutateCallerDirectory(t *testing.T) {
	fsys := vfs.NewDefault()
	cwd := "/home/user"

	res := Execute("cd /etc", cwd, fsys)
	assert.Equal(t, "/etc", res.NewDir)
	assert.Equal(t, "/home/user", cwd)

	// the next call still sees whatever the caller passes
	res = Execute("pwd", cwd, fsys)
	assert.Equal(t, []string{"/home/user"}, res.Text())
}

type panickingFS struct{ FileSystem }

func (panickingFS) ListDir(string) ([]string, error) { panic("disk on fire") }

func TestExecute_RecoversHandlerPanic(t *testing.T) {
	var buf bytes.Buffer
	in := New(DefaultEnvironment(), WithLogger(logging.NewConsoleLoggerWithWriter(&buf, false)))

	res := in.Execute("ls", "/", panickingFS{vfs.NewDefault()})

	assert.Equal(t, linuxsim.ClassError, res.Class)
	assert.Equal(t, []string{"ls: internal error"}, res.Text())
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestExecute_VerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	in := New(DefaultEnvironment(), WithLogger(logging.NewConsoleLoggerWithWriter(&buf, true)))

	in.Execute("ls -a /tmp", "/", vfs.NewDefault())
	in.Execute("nope", "/", vfs.NewDefault())

	out := buf.String()
	assert.Contains(t, out, "[VERBOSE] exec ls [-a /tmp] (cwd=/)")
	assert.Contains(t, out, `unknown command "nope"`)
}

func TestCommands(t *testing.T) {
	names := New(Environment{}).Commands()

	for _, want := range []string{"cd", "ls", "pwd", "mkdir", "touch", "cat", "echo", "clear", "rm", "whoami", "date", "uname", "help"} {
		assert.Contains(t, names, want)
	}
	assert.True(t, sortedStrings(names), "commands should be sorted: %v", names)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"echo", "a", "b"}, Tokenize("  echo   a\tb  "))
	assert.Empty(t, Tokenize("   "))
}

func TestSplitFlags(t *testing.T) {
	flags, operands := splitFlags([]string{"-r", "a", "-f", "-", "b"})
	assert.Equal(t, "rf", flags)
	assert.Equal(t, []string{"a", "-", "b"}, operands)
}

func TestEnvironment_Prompt(t *testing.T) {
	env := DefaultEnvironment()
	assert.Equal(t, "user@linuxsim:/tmp$ ", env.Prompt("/tmp"))

	env.User = "root"
	assert.Equal(t, "#", env.Sigil())
	assert.Equal(t, "root@linuxsim:/# ", env.Prompt("/"))
}

func TestNew_FillsDefaults(t *testing.T) {
	in := New(Environment{Hostname: "box"})
	env := in.Environment()

	require.NotNil(t, env.Now)
	assert.Equal(t, "box", env.Hostname)
	assert.Equal(t, linuxsim.DefaultUser, env.User)
	assert.Equal(t, linuxsim.DefaultHome, env.Home)
	assert.NotEmpty(t, env.Hosts)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if strings.Compare(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
