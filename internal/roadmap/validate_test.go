package roadmap

import (
	"strings"
	"testing"
)

func TestValidate_ValidSet(t *testing.T) {
	nodes := []Node{
		{ID: 1, Track: "Web", Progress: IntPtr(0)},
		{ID: 2, Track: "Web", ParentID: IDPtr(1), Progress: IntPtr(100)},
		{ID: 3, Track: "Web", Children: []Node{{ID: 4, Track: "Web"}}},
	}
	if err := Validate(nodes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  string
	}{
		{
			name:  "duplicate id",
			nodes: []Node{{ID: 1, Track: "Web"}, {ID: 1, Track: "Web"}},
			want:  "duplicate",
		},
		{
			name:  "blank track",
			nodes: []Node{{ID: 1, Track: "   "}},
			want:  "no track",
		},
		{
			name:  "progress above range",
			nodes: []Node{{ID: 1, Track: "Web", Progress: IntPtr(101)}},
			want:  "progress",
		},
		{
			name:  "negative progress",
			nodes: []Node{{ID: 1, Track: "Web", Progress: IntPtr(-1)}},
			want:  "progress",
		},
		{
			name:  "dangling parent",
			nodes: []Node{{ID: 1, Track: "Web", ParentID: IDPtr(42)}},
			want:  "nonexistent parent 42",
		},
		{
			name: "cycle",
			nodes: []Node{
				{ID: 1, Track: "Web", ParentID: IDPtr(2)},
				{ID: 2, Track: "Web", ParentID: IDPtr(1)},
			},
			want: "cycle",
		},
		{
			name:  "self parent",
			nodes: []Node{{ID: 7, Track: "Web", ParentID: IDPtr(7)}},
			want:  "nodes: 7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.nodes)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}
