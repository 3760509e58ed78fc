package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Browse(t *testing.T) {
	h := NewHistory(0)

	_, ok := h.Prev()
	assert.False(t, ok, "empty history")

	h.Add("ls", "/")
	h.Add("pwd", "/tmp")

	line, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, "pwd", line)

	line, _ = h.Prev()
	assert.Equal(t, "ls", line)

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "pwd", line)

	line, ok = h.Next()
	assert.True(t, ok)
	assert.Empty(t, line)

	_, ok = h.Next()
	assert.False(t, ok)
}

func TestHistory_AddResetsCursorAndSkipsBlank(t *testing.T) {
	h := NewHistory(0)
	h.Add("ls", "/")
	h.Prev()

	_, ok := h.Add(" \t", "/")
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())

	line, _ := h.Prev()
	assert.Equal(t, "ls", line, "cursor restarts at the newest entry")
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Add("a", "/")
	h.Add("b", "/")
	e, ok := h.Add("c", "/tmp")
	require.True(t, ok)

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Command)
	assert.Equal(t, e, entries[1])
	assert.Equal(t, "/tmp", entries[1].Path)
}
