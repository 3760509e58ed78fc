package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/internal/vfs"
)

func TestRunLines(t *testing.T) {
	session := shell.NewSession(shell.New(shell.DefaultEnvironment()), vfs.NewDefault())
	in := strings.NewReader("pwd\n\ncd /tmp\necho hi > x\ncat x\nnope\nexit\npwd\n")
	var out, errOut bytes.Buffer

	failed, err := RunLines(context.Background(), session, in, &out, &errOut, false)
	require.NoError(t, err)

	assert.True(t, failed)
	assert.Equal(t, "/home/user\nhi\n", out.String())
	assert.Equal(t, "Command not found: nope\n", errOut.String())
	assert.Equal(t, "/tmp", session.Cwd())
}

func TestRunLines_Echo(t *testing.T) {
	session := shell.NewSession(shell.New(shell.DefaultEnvironment()), vfs.NewDefault())
	var out bytes.Buffer

	failed, err := RunLines(context.Background(), session, strings.NewReader("whoami\n"), &out, &out, true)
	require.NoError(t, err)

	assert.False(t, failed)
	assert.Equal(t, "user@linuxsim:/home/user$ whoami\nuser\n", out.String())
}

func TestRunLines_Cancelled(t *testing.T) {
	session := shell.NewSession(shell.New(shell.DefaultEnvironment()), vfs.NewDefault())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunLines(ctx, session, strings.NewReader("pwd\n"), &bytes.Buffer{}, &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, context.Canceled)
}
