package roadmap

import (
	"reflect"
	"sync"
	"testing"
)

func treeBoard() *Board {
	return NewBoard([]Node{
		{ID: 10, Label: "Foundations", Track: "Web", OrderIndex: 0},
		{ID: 11, Label: "HTML", Track: "Web", OrderIndex: 0, ParentID: IDPtr(10)},
		{ID: 12, Label: "CSS", Track: "Web", OrderIndex: 1, ParentID: IDPtr(10)},
		{ID: 13, Label: "Flexbox", Track: "Web", OrderIndex: 0, ParentID: IDPtr(12)},
		{ID: 20, Label: "Networking", Track: "Cybersecurity", OrderIndex: 0},
	})
}

func TestBoard_FlattensNestedChildren(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 1, Label: "Root", Track: "Web", Children: []Node{
			{ID: 2, Label: "Child", Track: "Web"},
		}},
	})
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	child, ok := b.Get(2)
	if !ok {
		t.Fatal("nested child not on board")
	}
	if child.ParentID == nil || *child.ParentID != 1 {
		t.Errorf("child ParentID = %v, want 1", child.ParentID)
	}
	if got := ids(b.Children(1)); !reflect.DeepEqual(got, []int64{2}) {
		t.Errorf("Children(1) = %v, want [2]", got)
	}
}

func TestBoard_RootsAndTree(t *testing.T) {
	b := treeBoard()

	if got := ids(b.Roots("Web")); !reflect.DeepEqual(got, []int64{10}) {
		t.Errorf("Roots(Web) = %v, want [10]", got)
	}

	tree := b.Tree("Web")
	if len(tree) != 1 || tree[0].ID != 10 {
		t.Fatalf("Tree(Web) roots = %v, want [10]", ids(tree))
	}
	if got := ids(tree[0].Children); !reflect.DeepEqual(got, []int64{11, 12}) {
		t.Errorf("children of 10 = %v, want [11 12]", got)
	}
	if got := ids(tree[0].Children[1].Children); !reflect.DeepEqual(got, []int64{13}) {
		t.Errorf("children of 12 = %v, want [13]", got)
	}
}

func TestBoard_TreeIsACopy(t *testing.T) {
	b := treeBoard()
	tree := b.Tree("Web")
	tree[0].Completed = true
	tree[0].Children[0].Completed = true

	n, _ := b.Get(10)
	if n.Completed {
		t.Error("mutating derived tree leaked into the board")
	}
}

func TestBoard_TreeSurvivesCycles(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 1, Track: "Web"},
		{ID: 2, Track: "Web", ParentID: IDPtr(3)},
		{ID: 3, Track: "Web", ParentID: IDPtr(2)},
		{ID: 4, Track: "Web", ParentID: IDPtr(4)},
	})
	tree := b.Tree("Web")
	if got := ids(tree); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("Tree with cycles = %v, want [1]", got)
	}
}

func TestBoard_ParentInOtherTrackIsRoot(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 1, Track: "Web"},
		{ID: 2, Track: "Cybersecurity", ParentID: IDPtr(1)},
	})
	if got := ids(b.Roots("Cybersecurity")); !reflect.DeepEqual(got, []int64{2}) {
		t.Errorf("Roots(Cybersecurity) = %v, want [2]", got)
	}
	if tree := b.Tree("Web"); len(tree[0].Children) != 0 {
		t.Errorf("cross-track child leaked into Web tree: %v", ids(tree[0].Children))
	}
}

// Scenario B: completing a child leaves the root untouched.
func TestBoard_CompleteChildOnly(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 10, Label: "Root", Track: "Web"},
		{ID: 11, Label: "Child", Track: "Web", ParentID: IDPtr(10)},
	})

	if !b.Complete(11) {
		t.Fatal("Complete(11) = false, want true")
	}

	root, _ := b.Get(10)
	child, _ := b.Get(11)
	if root.Completed {
		t.Error("root should stay incomplete")
	}
	if !child.Completed {
		t.Error("child should be completed")
	}

	rows := TreeRows(b.Tree("Web"))
	if !rows[0].ShowButton || rows[0].Status != ActionMarkComplete {
		t.Errorf("root row = %+v, want Mark Complete button", rows[0])
	}
	if rows[1].ShowButton || rows[1].Status != StatusCompleted {
		t.Errorf("child row = %+v, want completed without button", rows[1])
	}
}

// Scenario C: completing an unknown id changes nothing.
func TestBoard_CompleteUnknownIsNoop(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 10, Track: "Web"},
		{ID: 11, Track: "Web", ParentID: IDPtr(10)},
	})
	before := b.Nodes()

	if b.Complete(999) {
		t.Error("Complete(999) = true, want false")
	}
	if after := b.Nodes(); !reflect.DeepEqual(before, after) {
		t.Errorf("board changed: before %+v, after %+v", before, after)
	}
}

func TestBoard_CompleteFlipsExactlyOne(t *testing.T) {
	b := treeBoard()
	before := b.Nodes()

	b.Complete(12)

	for _, n := range b.Nodes() {
		var prev Node
		for _, p := range before {
			if p.ID == n.ID {
				prev = p
			}
		}
		if n.ID == 12 {
			if !n.Completed {
				t.Error("node 12 not completed")
			}
			continue
		}
		if n.Completed != prev.Completed {
			t.Errorf("node %d changed completed %v -> %v", n.ID, prev.Completed, n.Completed)
		}
	}
}

func TestBoard_SetCompletedReturnsPrevious(t *testing.T) {
	b := NewBoard([]Node{{ID: 1, Track: "Web", Completed: true}})

	prev, ok := b.SetCompleted(1, false)
	if !ok || !prev {
		t.Errorf("SetCompleted = (%v, %v), want (true, true)", prev, ok)
	}
	if _, ok := b.SetCompleted(2, true); ok {
		t.Error("SetCompleted on unknown id should report false")
	}
}

func TestBoard_Stats(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 1, Track: "Web", Completed: true},
		{ID: 2, Track: "Web"},
		{ID: 3, Track: "Web ", Completed: true},
		{ID: 4, Track: "Cybersecurity"},
	})
	s := b.Stats("Web")
	if s.Completed != 2 || s.Total != 3 {
		t.Errorf("Stats(Web) = %+v, want 2/3", s)
	}
	if (Stats{}).Percent() != 0 {
		t.Error("empty stats should be 0%")
	}
}

func TestBoard_ReplaceKeepsFirstDuplicate(t *testing.T) {
	b := NewBoard([]Node{
		{ID: 1, Label: "first", Track: "Web"},
		{ID: 1, Label: "second", Track: "Web"},
	})
	n, _ := b.Get(1)
	if b.Len() != 1 || n.Label != "first" {
		t.Errorf("got Len=%d label=%q, want 1 %q", b.Len(), n.Label, "first")
	}
}

func TestBoard_ConcurrentWrites(t *testing.T) {
	b := treeBoard()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.Complete(11)
		}()
		go func() {
			defer wg.Done()
			_ = b.Tree("Web")
		}()
	}
	wg.Wait()

	n, _ := b.Get(11)
	if !n.Completed {
		t.Error("node 11 should be completed")
	}
}

func TestBoard_Totals(t *testing.T) {
	b := treeBoard()
	b.Complete(11)
	b.Complete(20)

	got := b.Totals()
	if got.Completed != 2 || got.Total != 5 {
		t.Errorf("Totals = %+v, want 2/5", got)
	}
	if empty := NewBoard(nil).Totals(); empty.Total != 0 || empty.Percent() != 0 {
		t.Errorf("empty Totals = %+v", empty)
	}
}
