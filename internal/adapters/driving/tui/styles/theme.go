// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Accent is used for titles, the prompt and the selected row.
	Accent lipgloss.Color

	// Scope highlights the active field scope.
	Scope lipgloss.Color

	// Text is the default text colour.
	Text lipgloss.Color

	// Muted is for headers, hints and absent values.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent: lipgloss.Color("#7C3AED"), // Purple
		Scope:  lipgloss.Color("#06B6D4"), // Cyan
		Text:   lipgloss.Color("#CDD6F4"), // Light gray
		Muted:  lipgloss.Color("#6C7086"), // Medium gray
		Error:  lipgloss.Color("#F38BA8"), // Red
		Border: lipgloss.Color("#45475A"), // Border gray
		Bar:    lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title renders the application header.
	Title lipgloss.Style

	// Prompt renders the search label.
	Prompt lipgloss.Style

	// Scope renders the active scope badge.
	Scope lipgloss.Style

	// Header renders the record table header.
	Header lipgloss.Style

	// Cell renders an ordinary table cell.
	Cell lipgloss.Style

	// Selected renders the highlighted row.
	Selected lipgloss.Style

	// Muted renders hints and empty placeholders.
	Muted lipgloss.Style

	// Error renders error messages.
	Error lipgloss.Style

	// InputField wraps the text input.
	InputField lipgloss.Style

	// StatusBar renders the bottom bar.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Scope: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Scope),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted),

		Cell: lipgloss.NewStyle().
			Foreground(theme.Text),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text).
			Background(theme.Accent),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
