package roadmap

// Action labels and status texts shown by the views.
const (
	ActionContinue     = "Continue Learning"
	ActionStartLater   = "Start Later"
	ActionMarkComplete = "Mark Complete"
	StatusCompleted    = "✔ Completed"
)

// ShowsProgress reports whether a progress indicator is shown for n:
// only when a progress value is present and the node is not completed.
func ShowsProgress(n Node) bool {
	return n.Progress != nil && !n.Completed
}

// ActionLabel returns the list-view action for n, or "" when the node is
// completed and no action is shown.
func ActionLabel(n Node) string {
	if n.Completed {
		return ""
	}
	if n.ProgressValue() > 0 {
		return ActionContinue
	}
	return ActionStartLater
}

// ListItem is one card of the flat list view.
type ListItem struct {
	ID           int64
	Label        string
	Description  string
	Depth        int
	Completed    bool
	ShowProgress bool
	Percent      int
	Action       string
}

// Flatten turns a node sequence into list items, descending into Children
// so sub-steps appear indented below their parent. Children of completed
// nodes are still listed.
func Flatten(nodes []Node) []ListItem {
	var items []ListItem
	var walk func(ns []Node, depth int)
	walk = func(ns []Node, depth int) {
		for _, n := range ns {
			item := ListItem{
				ID:           n.ID,
				Label:        n.Label,
				Description:  n.Description,
				Depth:        depth,
				Completed:    n.Completed,
				ShowProgress: ShowsProgress(n),
				Action:       ActionLabel(n),
			}
			if item.ShowProgress {
				item.Percent = n.ProgressValue()
			}
			items = append(items, item)
			if len(n.Children) > 0 {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)
	return items
}
