package roadmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/router"
	rm "github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/screen"
	"github.com/abhisek/pathway/internal/session"
	"github.com/abhisek/pathway/internal/ui/components"
	"github.com/abhisek/pathway/internal/ui/layout"
	"github.com/abhisek/pathway/internal/ui/theme"
)

// DetailScreen shows a single step with its sub-steps and lets the
// learner change its completion.
type DetailScreen struct {
	sess *session.Session
	id   int64
	menu components.Menu

	status    string
	statusErr bool
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates a DetailScreen for step id.
func NewDetail(sess *session.Session, id int64) *DetailScreen {
	d := &DetailScreen{sess: sess, id: id}
	d.menu = components.NewMenu(d.menuItems())
	return d
}

func (d *DetailScreen) Init() tea.Cmd { return nil }

func (d *DetailScreen) Title() string {
	if n, ok := d.sess.Board().Get(d.id); ok {
		return n.Label
	}
	return "Step"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) menuItems() []components.MenuItem {
	n, ok := d.sess.Board().Get(d.id)
	if !ok {
		return []components.MenuItem{{Label: "Back", Action: pop}}
	}
	items := []components.MenuItem{{
		Label:  rm.ActionMarkComplete,
		Action: func() tea.Cmd { return completeCmd(d.sess, d.id) },
	}}
	if n.Completed {
		items = []components.MenuItem{{
			Label:  "Mark Incomplete",
			Action: func() tea.Cmd { return toggleCmd(d.sess, d.id) },
		}}
	}
	return append(items, components.MenuItem{Label: "Back", Action: pop})
}

func pop() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		if msg.Result.StepID != d.id {
			return d, nil
		}
		if msg.Result.OK() {
			d.status, d.statusErr = "saved", false
		} else {
			d.status, d.statusErr = fmt.Sprintf("could not save progress for step %d", d.id), true
		}
		d.menu.SetItems(d.menuItems())
		return d, nil
	case LoadedMsg:
		d.menu.SetItems(d.menuItems())
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DetailScreen) View(width, height int) string {
	n, ok := d.sess.Board().Get(d.id)
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("Step %d is no longer on the roadmap.", d.id)))
	}

	contentWidth := min(width-8, 70)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + n.Label))
	b.WriteString("\n")
	if n.Completed {
		b.WriteString("  " + theme.CompletedBadge.Render(rm.StatusCompleted))
	} else {
		b.WriteString(dimStyle.Render("  " + rm.ActionLabel(n)))
	}
	b.WriteString("\n\n")

	if n.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(n.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render("  Track:     ") + valStyle.Render(n.TrackKey()) + "\n")
	b.WriteString(dimStyle.Render("  Order:     ") + valStyle.Render(fmt.Sprintf("%d", n.OrderIndex)) + "\n")
	if n.ParentID != nil {
		if parent, ok := d.sess.Board().Get(*n.ParentID); ok {
			b.WriteString(dimStyle.Render("  Part of:   ") + valStyle.Render(parent.Label) + "\n")
		}
	}
	if rm.ShowsProgress(n) {
		b.WriteString(dimStyle.Render("  Progress:  ") +
			components.NewProgressBar("", n.ProgressValue(), true, min(contentWidth-14, 40)).View() + "\n")
	}
	b.WriteString("\n")

	if children := d.sess.Board().Children(d.id); len(children) > 0 {
		b.WriteString(theme.Section.Render("  Sub-steps"))
		b.WriteString("\n")
		for _, c := range rm.SortByOrder(children) {
			icon, style := "○", dimStyle
			if c.Completed {
				icon, style = "●", lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s", icon, c.Label)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(d.menu.View())

	if d.status != "" {
		b.WriteString("\n")
		if d.statusErr {
			b.WriteString(theme.StatusError.Render("  " + d.status))
		} else {
			b.WriteString(theme.StatusInfo.Render("  " + d.status))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}
