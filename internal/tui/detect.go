package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNonInteractive forces line mode when set to "1".
const EnvNonInteractive = "LINUXSIM_NON_INTERACTIVE"

// Mode represents the interaction mode of the shell front end.
type Mode int

const (
	// ModeNonInteractive reads plain lines: scripts, pipes, CI.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen terminal.
	ModeInteractive
)

// DetectMode determines whether the shell should run the terminal UI.
//
// Returns ModeNonInteractive if:
//   - stdin is not a terminal (piped input, CI/CD)
//   - LINUXSIM_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
