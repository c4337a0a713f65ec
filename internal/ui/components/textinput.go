package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a filter box.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates an unfocused search box.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return SearchInput{Model: ti}
}

// Focus starts capturing keys.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur stops capturing keys, keeping the current query.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}

// Focused reports whether the box is capturing keys.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Reset clears the query.
func (s *SearchInput) Reset() {
	s.Model.Reset()
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search box. An idle, empty box renders a hint.
func (s SearchInput) View() string {
	if !s.Focused() && s.Query() == "" {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  / to search")
	}
	return "  " + s.Model.View()
}

// Query returns the trimmed, lower-cased filter text.
func (s SearchInput) Query() string {
	return strings.ToLower(strings.TrimSpace(s.Model.Value()))
}
