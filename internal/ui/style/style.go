// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0E7490")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles for the resolve summary.
var (
	ChangedStyle   = lipgloss.NewStyle().Foreground(Green)
	UnchangedStyle = lipgloss.NewStyle().Foreground(Slate)
	FailedStyle    = lipgloss.NewStyle().Foreground(Red)
	TagStyle       = lipgloss.NewStyle().Foreground(Cyan)
)
