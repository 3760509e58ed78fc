package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

func TestSession_AppliesDirectoryChanges(t *testing.T) {
	s := NewSession(New(DefaultEnvironment()), vfs.NewDefault())
	assert.Equal(t, linuxsim.DefaultHome, s.Cwd())
	assert.Equal(t, "user@linuxsim:/home/user$ ", s.Prompt())

	res := s.Run("cd documents")
	require.False(t, res.Failed())
	assert.Equal(t, "/home/user/documents", s.Cwd())

	res = s.Run("cd /missing")
	assert.True(t, res.Failed())
	assert.Equal(t, "/home/user/documents", s.Cwd())

	assert.Equal(t, []string{"/home/user/documents"}, s.Run("pwd").Text())
}

func TestSession_CleansHome(t *testing.T) {
	s := NewSession(New(Environment{Home: "/home//user/"}), vfs.NewDefault())
	assert.Equal(t, "/home/user", s.Cwd())

	s.Run("cd /tmp")
	res := s.Run("cd")
	require.False(t, res.Failed())
	assert.Equal(t, "/home/user", s.Cwd())
	assert.Equal(t, []string{"/home/user"}, s.Run("pwd").Text())
}

func TestSession_StartsAtRootWithoutHome(t *testing.T) {
	s := NewSession(New(Environment{Home: "/home/ghost"}), vfs.New())
	assert.Equal(t, "/", s.Cwd())
}
