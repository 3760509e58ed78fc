package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/linuxsim/internal/shell"
)

// Run starts the full-screen terminal and blocks until the user exits or
// ctx is cancelled.
func Run(ctx context.Context, session *shell.Session, opts ...tea.ProgramOption) (Terminal, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewTerminal(session), opts...)

	final, err := p.Run()
	if err != nil {
		return Terminal{}, fmt.Errorf("terminal: %w", err)
	}
	t, _ := final.(Terminal)
	return t, nil
}

// RunLines is the non-interactive front end: it reads one command per
// line from r and writes plain output to w. Errors go to errw. It stops at
// end of input or when a command asks to exit, and reports whether any
// command failed.
func RunLines(ctx context.Context, session *shell.Session, r io.Reader, w, errw io.Writer, echo bool) (failed bool, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		line := scanner.Text()
		if shell.IsBlank(line) {
			continue
		}
		if echo {
			fmt.Fprintf(w, "%s%s\n", session.Prompt(), line)
		}

		res := session.Run(line)
		out := w
		if res.Failed() {
			failed = true
			out = errw
		}
		for _, text := range res.Text() {
			fmt.Fprintln(out, text)
		}
		if res.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read commands: %w", err)
	}
	return failed, nil
}
