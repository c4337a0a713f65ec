package roadmap

import "sync"

// Board is the single in-memory copy of a learner's roadmap.
//
// Nodes are kept flat, keyed by id, with an explicit child adjacency.
// Tree shapes are derived on demand, so updating one node is a map write.
// Both views and the progress mutator read and write through the same
// Board. It is safe for concurrent use.
type Board struct {
	mu       sync.RWMutex
	order    []int64
	byID     map[int64]*Node
	childIDs map[int64][]int64
}

// Stats summarizes completion for a set of nodes.
type Stats struct {
	Completed int
	Total     int
}

// Percent returns the completed fraction in [0, 1].
func (s Stats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// NewBoard builds a Board from fetched nodes.
func NewBoard(nodes []Node) *Board {
	b := &Board{}
	b.Replace(nodes)
	return b
}

// Replace swaps the board contents for a freshly fetched node set.
// Nested children are flattened and inherit their parent's id when they
// carry no parent_id of their own. Only the first node seen for an id
// is kept.
func (b *Board) Replace(nodes []Node) {
	order := make([]int64, 0, len(nodes))
	byID := make(map[int64]*Node, len(nodes))

	var add func(n Node, parent *int64)
	add = func(n Node, parent *int64) {
		if _, dup := byID[n.ID]; dup {
			return
		}
		flat := n.clone()
		flat.Children = nil
		if flat.ParentID == nil && parent != nil {
			flat.ParentID = IDPtr(*parent)
		}
		byID[n.ID] = &flat
		order = append(order, n.ID)
		for _, ch := range n.Children {
			add(ch, &n.ID)
		}
	}
	for _, n := range nodes {
		add(n, nil)
	}

	childIDs := make(map[int64][]int64)
	for _, id := range order {
		n := byID[id]
		if n.ParentID == nil {
			continue
		}
		if _, ok := byID[*n.ParentID]; ok {
			childIDs[*n.ParentID] = append(childIDs[*n.ParentID], id)
		}
	}

	b.mu.Lock()
	b.order = order
	b.byID = byID
	b.childIDs = childIDs
	b.mu.Unlock()
}

// Len returns the number of nodes on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Get returns a copy of the node with the given id.
func (b *Board) Get(id int64) (Node, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n, ok := b.byID[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Nodes returns every node in fetch order, without Children.
func (b *Board) Nodes() []Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Node, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id].clone())
	}
	return out
}

// Groups partitions the board by track.
func (b *Board) Groups() *Groups {
	return Group(b.Nodes())
}

// Tracks returns the track names in first-occurrence order.
func (b *Board) Tracks() []string {
	return b.Groups().Keys()
}

// Stats counts completed nodes in a track.
func (b *Board) Stats(track string) Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var s Stats
	for _, id := range b.order {
		n := b.byID[id]
		if n.TrackKey() != track {
			continue
		}
		s.Total++
		if n.Completed {
			s.Completed++
		}
	}
	return s
}

// Totals counts completed nodes across every track.
func (b *Board) Totals() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := Stats{Total: len(b.order)}
	for _, id := range b.order {
		if b.byID[id].Completed {
			s.Completed++
		}
	}
	return s
}

// Children returns the direct children of id in fetch order.
func (b *Board) Children(id int64) []Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := b.childIDs[id]
	out := make([]Node, 0, len(ids))
	for _, cid := range ids {
		out = append(out, b.byID[cid].clone())
	}
	return out
}

// Roots returns the top-level nodes of a track: nodes with no parent, or
// whose parent is missing or lives in another track.
func (b *Board) Roots(track string) []Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Node
	for _, id := range b.order {
		n := b.byID[id]
		if n.TrackKey() != track || !b.isRootLocked(n) {
			continue
		}
		out = append(out, n.clone())
	}
	return out
}

// Tree derives the nested node tree for a track. Children are filled from
// the adjacency; nodes on a cyclic parent chain are never reached.
func (b *Board) Tree(track string) []Node {
	b.mu.RLock()
	defer b.mu.RUnlock()

	visited := make(map[int64]bool)
	var build func(id int64) Node
	build = func(id int64) Node {
		visited[id] = true
		n := b.byID[id].clone()
		for _, cid := range b.childIDs[id] {
			if visited[cid] || b.byID[cid].TrackKey() != track {
				continue
			}
			n.Children = append(n.Children, build(cid))
		}
		return n
	}

	var roots []Node
	for _, id := range b.order {
		n := b.byID[id]
		if n.TrackKey() != track || !b.isRootLocked(n) || visited[id] {
			continue
		}
		roots = append(roots, build(id))
	}
	return roots
}

// SetCompleted writes the completed flag of a single node. It returns the
// previous value and whether the node exists.
func (b *Board) SetCompleted(id int64, completed bool) (previous bool, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.byID[id]
	if !ok {
		return false, false
	}
	previous = n.Completed
	n.Completed = completed
	return previous, true
}

// Complete marks one node completed. Ancestors, descendants and siblings
// are left alone. Unknown ids are a no-op and return false.
func (b *Board) Complete(id int64) bool {
	_, ok := b.SetCompleted(id, true)
	return ok
}

func (b *Board) isRootLocked(n *Node) bool {
	if n.ParentID == nil {
		return true
	}
	parent, ok := b.byID[*n.ParentID]
	if !ok {
		return true
	}
	return parent.TrackKey() != n.TrackKey()
}
