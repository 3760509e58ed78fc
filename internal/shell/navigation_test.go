package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

func TestCd(t *testing.T) {
	s := newSession(t)

	res := s.run("cd /home/user/documents")
	assert.Equal(t, linuxsim.ClassNormal, res.Class)
	assert.Empty(t, res.Lines)
	assert.Equal(t, "/home/user/documents", s.cwd)

	s.run("cd ..")
	assert.Equal(t, "/home/user", s.cwd)

	s.run("cd ../../../../..")
	assert.Equal(t, "/", s.cwd)

	s.run("cd")
	assert.Equal(t, linuxsim.DefaultHome, s.cwd)
}

func TestCd_Failures(t *testing.T) {
	s := newSession(t)

	res := s.run("cd nowhere")
	assert.Equal(t, linuxsim.ClassError, res.Class)
	assert.Equal(t, []string{"cd: nowhere: No such file or directory"}, res.Text())
	assert.Empty(t, res.NewDir)

	res = s.run("cd /etc/passwd")
	assert.Equal(t, []string{"cd: /etc/passwd: Not a directory"}, res.Text())
	assert.Equal(t, linuxsim.DefaultHome, s.cwd)
}

func TestLs_DocumentsScenario(t *testing.T) {
	s := newSession(t)
	s.run("cd /home/user/documents")

	res := s.run("ls")
	assert.Equal(t, linuxsim.ClassNormal, res.Class)
	assert.Equal(t, []string{"welcome.txt", "notes.txt"}, res.Text())
}

func TestLs_KindsAndHidden(t *testing.T) {
	s := newSession(t)

	res := s.run("ls")
	require.Len(t, res.Lines, 2)
	assert.Equal(t, linuxsim.Line{Text: "documents", Kind: linuxsim.KindDirectory}, res.Lines[0])
	assert.Equal(t, linuxsim.Line{Text: "projects", Kind: linuxsim.KindDirectory}, res.Lines[1])

	res = s.run("ls -a")
	assert.Equal(t, []string{"documents", "projects", ".config"}, res.Text())

	res = s.run("ls /bin")
	require.Len(t, res.Lines, 3)
	for _, l := range res.Lines {
		assert.Equal(t, linuxsim.KindExecutable, l.Kind, l.Text)
	}

	res = s.run("ls /etc")
	assert.Equal(t, linuxsim.KindPlain, res.Lines[0].Kind)
}

func TestLs_FlagsAndOperandInAnyOrder(t *testing.T) {
	s := newSession(t)

	a := s.run("ls -l /home/user -a")
	b := s.run("ls -la /home/user")
	c := s.run("ls /tmp -al /home/user")
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Len(t, a.Lines, 3)
}

func TestLs_LongFormat(t *testing.T) {
	s := newSession(t)

	res := s.run("ls -l /home/user/documents")
	assert.Equal(t, []string{
		"-rw-r--r-- 1 user user 0 Mar 07 09:05 welcome.txt",
		"-rw-r--r-- 1 user user 0 Mar 07 09:05 notes.txt",
	}, res.Text())

	res = s.run("ls -l /")
	require.NotEmpty(t, res.Lines)
	assert.Equal(t, "drwxr-xr-x 1 user user 4096 Mar 07 09:05 home", res.Lines[0].Text)
	assert.Equal(t, linuxsim.KindDirectory, res.Lines[0].Kind)
}

func TestLs_Errors(t *testing.T) {
	s := newSession(t)

	res := s.run("ls missing")
	assert.Equal(t, linuxsim.ClassError, res.Class)
	assert.Equal(t, []string{"ls: cannot access 'missing': No such file or directory"}, res.Text())

	res = s.run("ls /etc/hosts")
	assert.Equal(t, []string{"ls: cannot access '/etc/hosts': Not a directory"}, res.Text())
}

func TestPwd(t *testing.T) {
	s := newSession(t)
	res := s.run("pwd")
	assert.Equal(t, linuxsim.ClassSuccess, res.Class)
	assert.Equal(t, []string{"/home/user"}, res.Text())
}

func TestTree(t *testing.T) {
	s := newSession(t)

	res := s.run("tree")
	assert.Equal(t, []string{
		".",
		"├── documents",
		"│   ├── welcome.txt",
		"│   └── notes.txt",
		"└── projects",
		"",
		"2 directories, 2 files",
	}, res.Text())
	assert.Equal(t, linuxsim.KindDirectory, res.Lines[1].Kind)

	res = s.run("tree -a /home/user")
	assert.Equal(t, []string{
		"/home/user",
		"├── documents",
		"│   ├── welcome.txt",
		"│   └── notes.txt",
		"├── projects",
		"└── .config",
		"    └── settings.ini",
		"",
		"3 directories, 3 files",
	}, res.Text())
	assert.Equal(t, "3 directories, 3 files", res.Lines[len(res.Lines)-1].Text)

	res = s.run("tree /etc/hosts")
	assert.Equal(t, []string{"tree: /etc/hosts: Not a directory"}, res.Text())

	res = s.run("tree /nope")
	assert.Equal(t, []string{"tree: /nope: No such file or directory"}, res.Text())
}
