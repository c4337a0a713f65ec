package roadmap

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks a flat node set for contract violations: duplicate ids,
// blank tracks, out-of-range progress, dangling parents and cyclic parent
// chains. It returns a combined error describing every problem, or nil.
//
// Nested Children are validated too, after flattening.
func Validate(nodes []Node) error {
	flat := flattenNodes(nodes)
	var errs []string

	seen := make(map[int64]bool, len(flat))
	for _, n := range flat {
		if seen[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node id: %d", n.ID))
		}
		seen[n.ID] = true
		if n.TrackKey() == "" {
			errs = append(errs, fmt.Sprintf("node %d has no track", n.ID))
		}
		if n.Progress != nil && (*n.Progress < 0 || *n.Progress > 100) {
			errs = append(errs, fmt.Sprintf("node %d: progress must be in [0, 100], got %d", n.ID, *n.Progress))
		}
	}

	for _, n := range flat {
		if n.ParentID != nil && !seen[*n.ParentID] {
			errs = append(errs, fmt.Sprintf("node %d references nonexistent parent %d", n.ID, *n.ParentID))
		}
	}

	if cyc := cycleNodes(flat, seen); len(cyc) > 0 {
		ids := make([]string, len(cyc))
		for i, id := range cyc {
			ids[i] = fmt.Sprintf("%d", id)
		}
		errs = append(errs, fmt.Sprintf("%v involving nodes: %s", ErrCycleDetected, strings.Join(ids, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("roadmap validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// cycleNodes runs Kahn's algorithm over the parent -> child edges and
// returns the ids left with a nonzero in-degree, sorted.
func cycleNodes(flat []Node, known map[int64]bool) []int64 {
	inDegree := make(map[int64]int, len(flat))
	children := make(map[int64][]int64)
	for _, n := range flat {
		if _, ok := inDegree[n.ID]; !ok {
			inDegree[n.ID] = 0
		}
		if n.ParentID != nil && known[*n.ParentID] {
			inDegree[n.ID]++
			children[*n.ParentID] = append(children[*n.ParentID], n.ID)
		}
	}

	var queue []int64
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, cid := range children[id] {
			inDegree[cid]--
			if inDegree[cid] == 0 {
				queue = append(queue, cid)
			}
		}
	}

	if visited == len(inDegree) {
		return nil
	}
	var out []int64
	for id, deg := range inDegree {
		if deg > 0 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// flattenNodes lists every node, including nested children, in
// depth-first order. Children without a parent_id inherit the parent's.
func flattenNodes(nodes []Node) []Node {
	var out []Node
	var walk func(ns []Node, parent *int64)
	walk = func(ns []Node, parent *int64) {
		for _, n := range ns {
			flat := n
			flat.Children = nil
			if flat.ParentID == nil && parent != nil {
				flat.ParentID = IDPtr(*parent)
			}
			out = append(out, flat)
			walk(n.Children, IDPtr(n.ID))
		}
	}
	walk(nodes, nil)
	return out
}
