package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
	ColorInfo      = lipgloss.Color("51")  // Cyan
)

// Styles for the terminal.
var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Prompt parts
	PromptUserStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	PromptPathStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	PromptSepStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Result classes
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// Listing entries
	DirectoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ExecutableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// Completion menu
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// LineStyle picks the style for one output line. A result class other
// than normal colors every line; otherwise the line's kind decides.
func LineStyle(class linuxsim.Classification, kind linuxsim.LineKind) lipgloss.Style {
	switch class {
	case linuxsim.ClassError:
		return ErrorStyle
	case linuxsim.ClassSuccess:
		return SuccessStyle
	case linuxsim.ClassWarning:
		return WarningStyle
	case linuxsim.ClassInfo:
		return InfoStyle
	}
	switch kind {
	case linuxsim.KindDirectory:
		return DirectoryStyle
	case linuxsim.KindExecutable:
		return ExecutableStyle
	}
	return lipgloss.NewStyle()
}
