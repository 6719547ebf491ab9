// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Heart   = "♥"
)

// Styles.
var (
	// Card frames a rendered layout.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Slate).
		Padding(0, 1)

	// Success prefixes confirmations.
	Success = lipgloss.NewStyle().Foreground(Green)

	// Muted is used for secondary lines such as list bullets.
	Muted = lipgloss.NewStyle().Foreground(Slate)

	// Accent highlights names.
	Accent = lipgloss.NewStyle().Foreground(Iris).Bold(true)
)

// Confirm renders a check mark followed by msg.
func Confirm(msg string) string {
	return Success.Render(Check) + " " + msg
}

// Bullet renders a list item.
func Bullet(item string) string {
	return Muted.Render("-") + " " + item
}
