package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/linuxsim/internal/completion"
	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// Banner lines shown when a terminal starts.
const (
	WelcomeLine = "Welcome to LinuxSim Terminal v1.0.0"
	HintLine    = `Type "help" to see available commands.`
)

// Terminal is the interactive shell model: scrollback, a prompt line,
// command history and Tab completion over one session.
type Terminal struct {
	session   *shell.Session
	history   *History
	completer *completion.Completer
	input     textinput.Model

	// Rendered scrollback.
	lines []string
	// Candidates shown under the prompt while cycling.
	choices  []string
	selected int

	exited bool

	width  int
	height int

	keys KeyMap
}

// NewTerminal creates a terminal over session with the welcome banner in
// its scrollback.
func NewTerminal(session *shell.Session) Terminal {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Focus()

	t := Terminal{
		session:   session,
		history:   NewHistory(DefaultHistoryLimit),
		completer: completion.New(session.Interpreter().Commands()),
		input:     ti,
		width:     80,
		height:    24,
		keys:      DefaultKeyMap(),
	}
	t.lines = []string{
		BannerStyle.Render(WelcomeLine),
		HintLine,
		"",
	}
	t.input.Prompt = t.renderPrompt()
	return t
}

// Init implements tea.Model.
func (t Terminal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (t Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		t.input.Width = msg.Width - len(t.session.Prompt()) - 1
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, t.keys.Quit):
			t.exited = true
			return t, tea.Quit
		case key.Matches(msg, t.keys.Submit):
			return t.submit()
		case key.Matches(msg, t.keys.HistoryPrev):
			if line, ok := t.history.Prev(); ok {
				t.setInput(line)
			}
			return t, nil
		case key.Matches(msg, t.keys.HistoryNext):
			if line, ok := t.history.Next(); ok {
				t.setInput(line)
			}
			return t, nil
		case key.Matches(msg, t.keys.Complete):
			return t.complete(), nil
		case key.Matches(msg, t.keys.ClearScreen):
			t.lines = nil
			return t, nil
		}
		t.completer.Reset()
		t.choices = nil
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t Terminal) submit() (tea.Model, tea.Cmd) {
	line := t.input.Value()
	t.lines = append(t.lines, t.input.Prompt+line)
	t.history.Add(line, t.session.Cwd())
	t.input.Reset()
	t.completer.Reset()
	t.choices = nil

	res := t.session.Run(line)
	if res.Class == linuxsim.ClassClear {
		t.lines = nil
	} else {
		t.lines = append(t.lines, RenderResult(res)...)
	}
	t.input.Prompt = t.renderPrompt()

	if res.Exit {
		t.exited = true
		return t, tea.Quit
	}
	return t, nil
}

func (t Terminal) complete() Terminal {
	fsys := t.session.FileSystem()
	t.setInput(t.completer.Next(t.input.Value(), t.session.Cwd(), fsys))
	t.choices = nil
	if m := t.completer.Matches(); len(m) > 1 {
		t.choices = m
		t.selected = t.completer.Selected()
	}
	return t
}

func (t *Terminal) setInput(s string) {
	t.input.SetValue(s)
	t.input.CursorEnd()
}

func (t Terminal) renderPrompt() string {
	env := t.session.Interpreter().Environment()
	return PromptUserStyle.Render(env.User+"@"+env.Hostname) +
		PromptSepStyle.Render(":") +
		PromptPathStyle.Render(t.session.Cwd()) +
		PromptSepStyle.Render(env.Sigil()) + " "
}

// View implements tea.Model.
func (t Terminal) View() string {
	var b strings.Builder

	lines := t.lines
	room := t.height - 1
	if len(t.choices) > 0 {
		room--
	}
	if room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}

	if t.exited {
		return b.String()
	}

	b.WriteString(t.input.View())
	if len(t.choices) > 0 {
		b.WriteString("\n")
		b.WriteString(t.viewChoices())
	}
	return b.String()
}

func (t Terminal) viewChoices() string {
	parts := make([]string, len(t.choices))
	for i, c := range t.choices {
		word := c[strings.LastIndex(c, " ")+1:]
		if i == t.selected {
			parts[i] = SelectedStyle.Render(word)
		} else {
			parts[i] = UnselectedStyle.Render(word)
		}
	}
	return strings.Join(parts, "  ")
}

// History returns the commands submitted so far.
func (t Terminal) History() []HistoryEntry {
	return t.history.Entries()
}

// Exited reports whether the user left the terminal.
func (t Terminal) Exited() bool {
	return t.exited
}

// Scrollback returns the rendered output lines.
func (t Terminal) Scrollback() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Input returns the current prompt line.
func (t Terminal) Input() string {
	return t.input.Value()
}

// RenderResult styles every line of res for display.
func RenderResult(res linuxsim.Result) []string {
	out := make([]string, len(res.Lines))
	for i, l := range res.Lines {
		out[i] = LineStyle(res.Class, l.Kind).Render(l.Text)
	}
	return out
}
