package roadmap

import (
	"slices"
	"strings"
)

// TreeRow is one line of the tree view.
type TreeRow struct {
	ID          int64
	Label       string
	Depth       int
	Prefix      string
	HasChildren bool
	Completed   bool
	ShowButton  bool
	Status      string
}

// TreeRows lays out a node tree parent-above-children. Connector glyphs
// only appear under nodes that have children.
func TreeRows(roots []Node) []TreeRow {
	var rows []TreeRow
	var walk func(ns []Node, depth int, guides []bool)
	walk = func(ns []Node, depth int, guides []bool) {
		for i, n := range ns {
			last := i == len(ns)-1
			row := TreeRow{
				ID:          n.ID,
				Label:       n.Label,
				Depth:       depth,
				Prefix:      connector(guides, last, depth),
				HasChildren: len(n.Children) > 0,
				Completed:   n.Completed,
				ShowButton:  !n.Completed,
			}
			if n.Completed {
				row.Status = StatusCompleted
			} else {
				row.Status = ActionMarkComplete
			}
			rows = append(rows, row)
			if row.HasChildren {
				walk(n.Children, depth+1, append(slices.Clone(guides), !last))
			}
		}
	}
	walk(roots, 0, nil)
	return rows
}

// connector builds the prefix for a row. guides[i] tells whether the
// ancestor at depth i+1 still has siblings below, so a vertical line
// continues through this row.
func connector(guides []bool, last bool, depth int) string {
	if depth == 0 {
		return ""
	}
	var b strings.Builder
	for _, g := range guides[1:] {
		if g {
			b.WriteString("│  ")
		} else {
			b.WriteString("   ")
		}
	}
	if last {
		b.WriteString("└─ ")
	} else {
		b.WriteString("├─ ")
	}
	return b.String()
}
