package roadmap

import (
	"reflect"
	"testing"
)

func sampleNodes() []Node {
	return []Node{
		{ID: 1, Label: "HTML", Track: "Web", OrderIndex: 2},
		{ID: 2, Label: "Python", Track: "Data Science", OrderIndex: 1},
		{ID: 3, Label: "CSS", Track: " Web ", OrderIndex: 1},
		{ID: 4, Label: "Networking", Track: "Cybersecurity", OrderIndex: 1},
		{ID: 5, Label: "Pandas", Track: "Data Science\n", OrderIndex: 0},
	}
}

func ids(nodes []Node) []int64 {
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestGroup_Empty(t *testing.T) {
	g := Group(nil)
	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0", g.Len())
	}
	if len(g.Keys()) != 0 {
		t.Errorf("Keys = %v, want empty", g.Keys())
	}
}

func TestGroup_KeysInFirstOccurrenceOrder(t *testing.T) {
	g := Group(sampleNodes())
	want := []string{"Web", "Data Science", "Cybersecurity"}
	if got := g.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestGroup_TrimsTrackNames(t *testing.T) {
	g := Group(sampleNodes())
	if got := ids(g.Nodes("Web")); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Errorf("Web ids = %v, want [1 3]", got)
	}
	if got := g.Nodes(" Web "); got != nil {
		t.Errorf("untrimmed key should not exist, got %v", got)
	}
}

func TestGroup_StablePartitionNotSorted(t *testing.T) {
	g := Group(sampleNodes())
	// Node 2 has a higher order_index than node 5 but comes first in input.
	if got := ids(g.Nodes("Data Science")); !reflect.DeepEqual(got, []int64{2, 5}) {
		t.Errorf("Data Science ids = %v, want [2 5]", got)
	}
}

func TestGroup_NoDropNoDuplicate(t *testing.T) {
	input := sampleNodes()
	g := Group(input)

	count := make(map[int64]int)
	for _, k := range g.Keys() {
		for _, n := range g.Nodes(k) {
			count[n.ID]++
		}
	}
	if len(count) != len(input) {
		t.Fatalf("grouped %d distinct nodes, want %d", len(count), len(input))
	}
	for id, c := range count {
		if c != 1 {
			t.Errorf("node %d appears %d times", id, c)
		}
	}
}

func TestGroup_UnknownTrack(t *testing.T) {
	g := Group(sampleNodes())
	if got := g.Nodes("Design"); got != nil {
		t.Errorf("Nodes(unknown) = %v, want nil", got)
	}
}

func TestSortByOrder_Stable(t *testing.T) {
	nodes := []Node{
		{ID: 1, OrderIndex: 2},
		{ID: 2, OrderIndex: 1},
		{ID: 3, OrderIndex: 2},
		{ID: 4, OrderIndex: 0},
	}
	got := ids(SortByOrder(nodes))
	if want := []int64{4, 2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortByOrder = %v, want %v", got, want)
	}
	// Input must be untouched.
	if nodes[0].ID != 1 {
		t.Error("SortByOrder mutated its input")
	}
}

func TestSortCompletedLast(t *testing.T) {
	nodes := []Node{
		{ID: 1, OrderIndex: 0, Completed: true},
		{ID: 2, OrderIndex: 1},
		{ID: 3, OrderIndex: 2, Completed: true},
		{ID: 4, OrderIndex: 3},
	}
	got := ids(SortCompletedLast(nodes))
	if want := []int64{2, 4, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortCompletedLast = %v, want %v", got, want)
	}
}

func TestSortTree_SortsEveryLevel(t *testing.T) {
	tree := []Node{
		{ID: 1, OrderIndex: 1},
		{ID: 2, OrderIndex: 0, Children: []Node{
			{ID: 21, OrderIndex: 5},
			{ID: 22, OrderIndex: 3},
		}},
	}
	got := SortTree(tree, SortByOrder)
	if ids(got)[0] != 2 {
		t.Fatalf("root order = %v, want 2 first", ids(got))
	}
	if c := ids(got[0].Children); !reflect.DeepEqual(c, []int64{22, 21}) {
		t.Errorf("children order = %v, want [22 21]", c)
	}
}
