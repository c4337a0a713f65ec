// Package layout draws the application chrome around the active screen
// and holds the size rules screens use to fit their content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/ui/theme"
)

const (
	// MinWidth and MinHeight are the smallest terminal the app draws in.
	MinWidth  = 80
	MinHeight = 24

	// CompactWidth is the content width below which list cards drop
	// their descriptions.
	CompactWidth = 100
	// CompactHeight is measured on the content area between header and
	// footer, not on the terminal.
	CompactHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

func IsCompactHeight(height int) bool {
	return height < CompactHeight
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Remaining returns the lines left in height once used lines are taken,
// never negative.
func Remaining(height, used int) int {
	return max(height-used, 0)
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf("Terminal too small for Pathway.\n\nNeeds %d x %d, have %d x %d.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(body))
}

// bar is the boxed style shared by header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the app name, the screen title centered and status
// on the right, e.g. overall completion.
func RenderHeader(title, status string, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Pathway")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	end := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	// Border and padding take four columns.
	inner := max(width-4, 0)
	nameW, midW, endW := lipgloss.Width(name), lipgloss.Width(mid), lipgloss.Width(end)

	before := max((inner-midW)/2-nameW, 1)
	after := max(inner-nameW-before-midW-endW, 1)

	return bar(width).Render(name + strings.Repeat(" ", before) + mid + strings.Repeat(" ", after) + end)
}

// RenderFooter draws the key hints of the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description))
	}
	return bar(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, padding content to the
// height left between them.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := Remaining(height, lipgloss.Height(header)+lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return strings.Join([]string{header, body, footer}, "\n")
}
