package roadmap

import (
	"slices"
	"sort"
)

// Groups maps trimmed track names to the nodes in that track.
// Keys keep the order in which each track was first seen.
type Groups struct {
	keys    []string
	byTrack map[string][]Node
}

// Group partitions nodes by trimmed track name. The partition is stable:
// within a track, nodes keep their input order. Nodes are not sorted.
func Group(nodes []Node) *Groups {
	g := &Groups{byTrack: make(map[string][]Node)}
	for _, n := range nodes {
		key := n.TrackKey()
		if _, ok := g.byTrack[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.byTrack[key] = append(g.byTrack[key], n)
	}
	return g
}

// Keys returns the track names in first-occurrence order.
func (g *Groups) Keys() []string {
	return slices.Clone(g.keys)
}

// Nodes returns the nodes of a track, or nil for an unknown track.
func (g *Groups) Nodes(track string) []Node {
	return slices.Clone(g.byTrack[track])
}

// Len returns the number of tracks.
func (g *Groups) Len() int {
	return len(g.keys)
}

// SortByOrder returns a copy of nodes stably sorted by OrderIndex.
func SortByOrder(nodes []Node) []Node {
	sorted := slices.Clone(nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}

// SortCompletedLast returns a copy of nodes with unfinished steps first,
// each half ordered by OrderIndex.
func SortCompletedLast(nodes []Node) []Node {
	sorted := SortByOrder(nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return !sorted[i].Completed && sorted[j].Completed
	})
	return sorted
}

// SortTree applies sortFn to every sibling level of a node tree.
func SortTree(nodes []Node, sortFn func([]Node) []Node) []Node {
	sorted := sortFn(nodes)
	for i := range sorted {
		if len(sorted[i].Children) > 0 {
			sorted[i].Children = SortTree(sorted[i].Children, sortFn)
		}
	}
	return sorted
}
