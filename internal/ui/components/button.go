package components

import (
	"github.com/abhisek/pathway/internal/ui/theme"
)

// Button renders an inline action label. Focused buttons are filled.
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button.
func NewButton(label string, focused bool) Button {
	return Button{Label: label, Focused: focused}
}

// View renders the button, or "" when it has no label.
func (b Button) View() string {
	if b.Label == "" {
		return ""
	}
	label := "[ " + b.Label + " ]"
	if b.Focused {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
