package roadmap

import (
	"strings"

	"charm.land/lipgloss/v2"

	rm "github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/ui/components"
	"github.com/abhisek/pathway/internal/ui/layout"
	"github.com/abhisek/pathway/internal/ui/theme"
)

const indentWidth = 4

// renderList draws the nested list view: one card per step with its
// description, a progress bar for unfinished steps that report progress,
// and the advisory action. Descriptions are dropped when the area is
// compact in either direction.
func (s *RoadmapScreen) renderList(tree []rm.Node, width, height int) [][]string {
	items := rm.Flatten(tree)
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)

	groups := make([][]string, 0, len(items))
	for i, it := range items {
		selected := i == s.cursor
		indent := strings.Repeat(" ", 2+it.Depth*indentWidth)

		cursor := "  "
		if selected {
			cursor = "▸ "
		}

		title := titleStyle(it.Completed, selected).Render(it.Label)
		line := indent + cursor + title
		if it.Completed {
			line += "  " + theme.CompletedBadge.Render(rm.StatusCompleted)
		} else {
			line += "  " + components.NewButton(it.Action, selected).View()
		}

		group := []string{line}
		if it.Description != "" && !compact {
			desc := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(max(width-len(indent)-6, 20)).
				Render(it.Description)
			for _, dl := range strings.Split(desc, "\n") {
				group = append(group, indent+"    "+dl)
			}
		}
		if it.ShowProgress {
			barWidth := min(40, width-len(indent)-6)
			group = append(group, indent+"    "+components.NewProgressBar("", it.Percent, true, barWidth).View())
		}
		groups = append(groups, group)
	}
	return groups
}

// renderTree draws the tree view. Unfinished rows carry a Mark Complete
// button; completed rows show the completed badge instead.
func (s *RoadmapScreen) renderTree(tree []rm.Node, width int) [][]string {
	rows := rm.TreeRows(tree)

	groups := make([][]string, 0, len(rows))
	for i, r := range rows {
		selected := i == s.cursor

		cursor := "  "
		if selected {
			cursor = "▸ "
		}

		line := "  " + cursor + theme.Guide.Render(r.Prefix) + titleStyle(r.Completed, selected).Render(r.Label)
		if r.ShowButton {
			line += "  " + components.NewButton(rm.ActionMarkComplete, selected).View()
		} else {
			line += "  " + theme.CompletedBadge.Render(r.Status)
		}
		if lipgloss.Width(line) > width && width > 0 {
			line = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
		groups = append(groups, []string{line})
	}
	return groups
}

func titleStyle(completed, selected bool) lipgloss.Style {
	switch {
	case selected && completed:
		return theme.Completed.Bold(true)
	case selected:
		return theme.Selected
	case completed:
		return theme.Completed
	default:
		return theme.Unselected
	}
}
