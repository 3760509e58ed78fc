// Package completion implements Tab completion for the simulated shell.
//
// The first word of a line completes against command names; every later
// word completes against entries of the virtual filesystem, relative to the
// session's working directory. Repeated Tab presses cycle through the
// candidates.
//
// Usage:
//
//	c := completion.New(interp.Commands())
//
//	// On Tab press:
//	input.SetValue(c.Next(input.Value(), cwd, fsys))
//
//	// On any other keypress:
//	c.Reset()
package completion

import (
	"strings"

	"github.com/vvka-141/linuxsim/internal/vfs"
)

// Source is the part of the filesystem completion reads.
type Source interface {
	ListDir(p string) ([]string, error)
	IsDirectory(p string) bool
}

// Completer tracks state across Tab presses to cycle through matches.
// It is not safe for concurrent use.
type Completer struct {
	commands []string

	matches []string
	index   int
	last    string
}

// New creates a completer offering the given command names for the first
// word.
func New(commands []string) *Completer {
	cmds := make([]string, len(commands))
	copy(cmds, commands)
	return &Completer{commands: cmds}
}

// Next returns the completed line for input. When input is the value Next
// returned last time and there were several candidates, the following
// candidate is returned instead.
func (c *Completer) Next(input, cwd string, fsys Source) string {
	if c.matches != nil && input == c.last && len(c.matches) > 1 {
		c.index = (c.index + 1) % len(c.matches)
		c.last = c.matches[c.index]
		return c.last
	}

	c.matches = Candidates(input, cwd, c.commands, fsys)
	c.index = 0
	if len(c.matches) == 0 {
		c.matches = nil
		return input
	}

	// First Tab on several candidates: extend to their common prefix if
	// that gains anything, and start cycling on the next press.
	if len(c.matches) > 1 {
		if common := longestCommonPrefix(c.matches); len(common) > len(input) {
			c.index = -1
			c.last = common
			return common
		}
	}

	c.last = c.matches[0]
	return c.last
}

// Matches returns the candidates of the current cycle, for display.
func (c *Completer) Matches() []string {
	out := make([]string, len(c.matches))
	copy(out, c.matches)
	return out
}

// Selected returns the index of the candidate last returned, or -1.
func (c *Completer) Selected() int {
	if c.matches == nil {
		return -1
	}
	return c.index
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *Completer) Reset() {
	c.matches = nil
	c.index = 0
	c.last = ""
}

// Candidates lists every full-line completion of input. A lone command
// match gets a trailing space; directory matches get a trailing slash.
// Hidden entries are offered only when the typed prefix starts with a dot.
func Candidates(input, cwd string, commands []string, fsys Source) []string {
	parts := strings.Split(input, " ")
	if len(parts) <= 1 {
		return commandCandidates(strings.ToLower(input), commands)
	}

	last := parts[len(parts)-1]
	head := strings.Join(parts[:len(parts)-1], " ") + " "

	typedDir, prefix := "", last
	if i := strings.LastIndex(last, "/"); i >= 0 {
		typedDir, prefix = last[:i+1], last[i+1:]
	}

	dir := vfs.ResolvePath(typedDir, cwd)
	names, err := fsys.ListDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		completion := head + typedDir + name
		if fsys.IsDirectory(vfs.Join(dir, name)) {
			completion += "/"
		}
		out = append(out, completion)
	}
	return out
}

func commandCandidates(prefix string, commands []string) []string {
	var out []string
	for _, name := range commands {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	if len(out) == 1 {
		out[0] += " "
	}
	return out
}

func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	first := strs[0]
	for i := 0; i < len(first); i++ {
		for _, s := range strs[1:] {
			if i >= len(s) || s[i] != first[i] {
				return first[:i]
			}
		}
	}
	return first
}
