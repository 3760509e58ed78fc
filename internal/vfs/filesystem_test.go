package vfs

import (
	"errors"
	"io/fs"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

func TestNewDefault_Layout(t *testing.T) {
	f := NewDefault()

	names, err := f.ListDir("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "bin", "etc", "tmp"}, names)

	names, err = f.ListDir("/home/user")
	require.NoError(t, err)
	assert.Equal(t, []string{"documents", "projects", ".config"}, names)

	names, err = f.ListDir("/home/user/documents")
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome.txt", "notes.txt"}, names)

	assert.True(t, f.IsDirectory("/tmp"))
	assert.False(t, f.IsDirectory("/etc/passwd"))
	assert.False(t, f.IsDirectory("/nope"))
}

func TestExists(t *testing.T) {
	f := NewDefault()
	assert.True(t, f.Exists("/"))
	assert.True(t, f.Exists("/etc/hosts"))
	assert.False(t, f.Exists("/etc/hosts/child"))
	assert.False(t, f.Exists("/missing"))
}

func TestListDir_Errors(t *testing.T) {
	f := NewDefault()

	_, err := f.ListDir("/missing")
	require.ErrorIs(t, err, linuxsim.ErrNotFound)

	_, err = f.ListDir("/etc/passwd")
	require.ErrorIs(t, err, linuxsim.ErrNotADirectory)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "/etc/passwd", pathErr.Path)
}

func TestMkdir(t *testing.T) {
	f := New()

	require.NoError(t, f.Mkdir("/a"))
	assert.True(t, f.IsDirectory("/a"))

	require.ErrorIs(t, f.Mkdir("/a"), linuxsim.ErrAlreadyExists)
	names, err := f.ListDir("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names, "failed mkdir must not change the tree")

	require.ErrorIs(t, f.Mkdir("/x/y"), linuxsim.ErrNotFound)

	require.NoError(t, f.Touch("/file"))
	require.ErrorIs(t, f.Mkdir("/file/sub"), linuxsim.ErrNotADirectory)
	require.ErrorIs(t, f.Mkdir("/"), linuxsim.ErrAlreadyExists)
}

func TestTouch_Idempotent(t *testing.T) {
	f := NewDefault()

	require.NoError(t, f.Touch("/etc/hosts"))
	content, err := f.ReadFile("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1 localhost\n::1 localhost", content)

	require.NoError(t, f.Touch("/tmp"))
	assert.True(t, f.IsDirectory("/tmp"))

	require.NoError(t, f.Touch("/tmp/new"))
	content, err = f.ReadFile("/tmp/new")
	require.NoError(t, err)
	assert.Empty(t, content)

	require.ErrorIs(t, f.Touch("/nope/new"), linuxsim.ErrNotFound)
	require.ErrorIs(t, f.Touch("/etc/hosts/new"), linuxsim.ErrNotADirectory)
}

func TestReadFile_Errors(t *testing.T) {
	f := NewDefault()

	_, err := f.ReadFile("/missing")
	require.ErrorIs(t, err, linuxsim.ErrNotFound)

	_, err = f.ReadFile("/tmp")
	require.ErrorIs(t, err, linuxsim.ErrIsADirectory)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f := NewDefault()

	for _, content := range []string{"", "hello", "multi\nline\ntext", "  spaced  "} {
		require.NoError(t, f.WriteFile("/tmp/x.txt", content))
		got, err := f.ReadFile("/tmp/x.txt")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	}

	require.ErrorIs(t, f.WriteFile("/tmp", "data"), linuxsim.ErrIsADirectory)
	require.ErrorIs(t, f.WriteFile("/missing/x", "data"), linuxsim.ErrNotFound)
	assert.False(t, f.Exists("/missing/x"))
}

func TestRm(t *testing.T) {
	f := NewDefault()

	require.NoError(t, f.Rm("/etc/hosts"))
	assert.False(t, f.Exists("/etc/hosts"))

	require.ErrorIs(t, f.Rm("/etc/hosts"), linuxsim.ErrNotFound)
	require.ErrorIs(t, f.Rm("/tmp"), linuxsim.ErrIsADirectory)
	require.ErrorIs(t, f.Rm("/"), linuxsim.ErrIsADirectory)
	assert.True(t, f.IsDirectory("/tmp"))
}

func TestRmdir(t *testing.T) {
	f := NewDefault()

	require.NoError(t, f.Rmdir("/tmp", false))
	assert.False(t, f.Exists("/tmp"))

	require.ErrorIs(t, f.Rmdir("/", true), linuxsim.ErrInvalidArgument)
	assert.True(t, f.Exists("/"))

	require.ErrorIs(t, f.Rmdir("/missing", false), linuxsim.ErrNotFound)
	require.ErrorIs(t, f.Rmdir("/etc/passwd", false), linuxsim.ErrNotADirectory)
}

func TestRmdir_NonEmpty(t *testing.T) {
	f := NewDefault()

	err := f.Rmdir("/home", false)
	require.ErrorIs(t, err, linuxsim.ErrDirectoryNotEmpty)
	assert.True(t, f.Exists("/home/user/documents/welcome.txt"), "tree must be unchanged")

	var below []string
	require.NoError(t, f.Walk("/home", func(p string, _ FileInfo) error {
		below = append(below, p)
		return nil
	}))

	require.NoError(t, f.Rmdir("/home", true))
	for _, p := range below {
		assert.False(t, f.Exists(p), "%s should be gone", p)
	}
	assert.True(t, f.Exists("/etc"))
}

func TestStat(t *testing.T) {
	stamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f := NewDefault(WithClock(func() time.Time { return stamp }))

	info, err := f.Stat("/bin/bash")
	require.NoError(t, err)
	assert.Equal(t, "bash", info.Name())
	assert.Equal(t, "-rwxr-xr-x", info.Mode().String())
	assert.Equal(t, stamp, info.ModTime())

	info, err = f.Stat("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "-rw-r--r--", info.Mode().String())
	assert.Equal(t, int64(len("127.0.0.1 localhost\n::1 localhost")), info.Size())

	info, err = f.Stat("/tmp")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "drwxr-xr-x", info.Mode().String())
	assert.Equal(t, int64(linuxsim.DirectorySize), info.Size())

	_, err = f.Stat("/missing")
	require.ErrorIs(t, err, linuxsim.ErrNotFound)
}

func TestWalk_Order(t *testing.T) {
	f := New()
	require.NoError(t, f.Seed([]SeedEntry{
		{Path: "/b/two", Content: "2"},
		{Path: "/a", Dir: true},
		{Path: "/b/one", Content: "1"},
	}))

	var got []string
	require.NoError(t, f.Walk("/", func(p string, _ FileInfo) error {
		got = append(got, p)
		return nil
	}))
	assert.Equal(t, []string{"/", "/b", "/b/two", "/b/one", "/a"}, got)
}

func TestWalk_StopsOnErrorAndRecoversPanic(t *testing.T) {
	f := NewDefault()
	stop := errors.New("stop")

	calls := 0
	err := f.Walk("/", func(string, FileInfo) error {
		calls++
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)

	err = f.Walk("/etc", func(p string, _ FileInfo) error {
		if p == "/etc/hosts" {
			panic("boom")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/etc/hosts")

	require.ErrorIs(t, f.Walk("/missing", func(string, FileInfo) error { return nil }), linuxsim.ErrNotFound)
}

func TestSeed_FileInTheWay(t *testing.T) {
	f := NewDefault()
	err := f.Seed([]SeedEntry{{Path: "/etc/hosts/inner", Content: "x"}})
	require.ErrorIs(t, err, linuxsim.ErrNotADirectory)
}

func TestFileSystem_ConcurrentAccess(t *testing.T) {
	f := NewDefault()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p := Join("/tmp", string(rune('a'+id)))
			_ = f.WriteFile(p, "data")
			_, _ = f.ListDir("/tmp")
			_, _ = f.ReadFile(p)
		}(i)
	}
	wg.Wait()

	names, err := f.ListDir("/tmp")
	require.NoError(t, err)
	assert.Len(t, names, 20)
}
