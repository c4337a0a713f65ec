package roadmap

import (
	"reflect"
	"testing"
)

func TestTreeRows_Connectors(t *testing.T) {
	roots := []Node{
		{ID: 1, Label: "Root", Children: []Node{
			{ID: 2, Label: "A", Children: []Node{
				{ID: 4, Label: "A1"},
			}},
			{ID: 3, Label: "B"},
		}},
		{ID: 5, Label: "Leaf root"},
	}
	rows := TreeRows(roots)

	var prefixes []string
	for _, r := range rows {
		prefixes = append(prefixes, r.Prefix)
	}
	want := []string{"", "├─ ", "│  └─ ", "└─ ", ""}
	if !reflect.DeepEqual(prefixes, want) {
		t.Errorf("prefixes = %q, want %q", prefixes, want)
	}

	if !rows[0].HasChildren || rows[4].HasChildren {
		t.Error("HasChildren should only be set on nodes with children")
	}
}

func TestTreeRows_StatusAndButton(t *testing.T) {
	rows := TreeRows([]Node{
		{ID: 1, Completed: true},
		{ID: 2},
	})
	if rows[0].ShowButton || rows[0].Status != StatusCompleted {
		t.Errorf("completed row = %+v", rows[0])
	}
	if !rows[1].ShowButton || rows[1].Status != ActionMarkComplete {
		t.Errorf("open row = %+v", rows[1])
	}
}

func TestTreeRows_NoConnectorsWithoutChildren(t *testing.T) {
	rows := TreeRows([]Node{{ID: 1}, {ID: 2}})
	for _, r := range rows {
		if r.Prefix != "" {
			t.Errorf("row %d prefix = %q, want empty", r.ID, r.Prefix)
		}
	}
}
