package tui

import (
	"github.com/google/uuid"

	"github.com/vvka-141/linuxsim/internal/shell"
)

// DefaultHistoryLimit bounds the entries a History keeps.
const DefaultHistoryLimit = 500

// HistoryEntry is one submitted command and where it ran.
type HistoryEntry struct {
	ID      uuid.UUID
	Command string
	Path    string
}

// History stores submitted commands and a browsing cursor. The cursor is
// -1 while the user edits a fresh line; 0 is the most recent entry.
type History struct {
	entries []HistoryEntry
	pos     int
	limit   int
}

// NewHistory returns an empty history keeping at most limit entries, or
// DefaultHistoryLimit when limit is not positive.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{pos: -1, limit: limit}
}

// Add records command, unless it is blank, and resets the cursor.
func (h *History) Add(command, path string) (HistoryEntry, bool) {
	h.pos = -1
	if shell.IsBlank(command) {
		return HistoryEntry{}, false
	}
	e := HistoryEntry{ID: uuid.New(), Command: command, Path: path}
	h.entries = append(h.entries, e)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]HistoryEntry(nil), h.entries[over:]...)
	}
	return e, true
}

// Prev moves one entry back in time. At the oldest entry it stays there.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos < len(h.entries)-1 {
		h.pos++
	}
	return h.at(h.pos), true
}

// Next moves one entry forward. Moving past the newest entry returns an
// empty line; with no browsing in progress it reports false.
func (h *History) Next() (string, bool) {
	switch {
	case h.pos > 0:
		h.pos--
		return h.at(h.pos), true
	case h.pos == 0:
		h.pos = -1
		return "", true
	}
	return "", false
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) at(pos int) string {
	return h.entries[len(h.entries)-1-pos].Command
}
