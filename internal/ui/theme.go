package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// hop's color palette — mossy greens over slate, with a spark of amber.
var (
	// Primary colors
	Moss   = lipgloss.Color("#8CC084")
	Fern   = lipgloss.Color("#4F9D69")
	Amber  = lipgloss.Color("#FFB530")
	Slate  = lipgloss.Color("#6C7A89")
	Rust   = lipgloss.Color("#D64545")
	Sky    = lipgloss.Color("#58A6FF")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Moss)

	Success = lipgloss.NewStyle().
		Foreground(Fern)

	Error = lipgloss.NewStyle().
		Foreground(Rust)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Moss).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants.
const (
	IconHop   = "↪ "
	IconOk    = "✓ "
	IconError = "✗ "
	IconWarn  = "⚠️ "
	IconArrow = "→"
	IconDot   = "·"
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// init drops to plain output when stdout is piped or NO_COLOR is set.
// `hop <query>` prints a path for the shell to cd into, so styled bytes
// must never leak into captured output.
func init() {
	if os.Getenv("NO_COLOR") != "" || !IsStdoutTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
