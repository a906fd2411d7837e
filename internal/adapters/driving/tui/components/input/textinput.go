// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/rtftitles/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rtftitles/internal/core/domain"
)

// SearchInput wraps a bubbles textinput and carries the active field scope.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	scope     domain.FieldScope
	width     int
}

// NewSearchInput creates a focused search input scoped to the given field.
func NewSearchInput(s *styles.Styles, scope domain.FieldScope) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if !scope.IsValid() {
		scope = domain.ScopeAll
	}

	ti := textinput.New()
	ti.Placeholder = "Filename, title or path..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		scope:     scope,
		width:     50,
	}
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the prompt, scope badge and input.
func (s *SearchInput) View() string {
	label := s.styles.Prompt.Render("Search ")
	badge := s.styles.Scope.Render("[" + s.scope.Description() + "] ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, badge, input)
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Scope returns the active field scope.
func (s *SearchInput) Scope() domain.FieldScope {
	return s.scope
}

// CycleScope advances to the next field scope and returns it.
func (s *SearchInput) CycleScope() domain.FieldScope {
	s.scope = s.scope.Next()
	return s.scope
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Account for label, badge and padding
	inputWidth := width - 28
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input but keeps the scope.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
