package roadmap

import (
	"errors"
	"strings"
)

var (
	ErrNodeNotFound  = errors.New("roadmap: node not found")
	ErrCycleDetected = errors.New("roadmap: cycle detected in parent chain")
)

// Node is a single step in a learning path.
//
// Progress is only meaningful while Completed is false. A node at 100%
// progress that is not completed is a valid "almost done" state.
type Node struct {
	ID          int64  `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Progress    *int   `json:"progress,omitempty" yaml:"progress,omitempty"`
	OrderIndex  int    `json:"order_index" yaml:"order_index"`
	Track       string `json:"track" yaml:"track"`
	ParentID    *int64 `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Children    []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// TrackKey returns the grouping key for the node's track.
func (n Node) TrackKey() string {
	return strings.TrimSpace(n.Track)
}

// HasProgress reports whether the node carries a progress value.
func (n Node) HasProgress() bool {
	return n.Progress != nil
}

// ProgressValue returns the progress value, or 0 when absent.
func (n Node) ProgressValue() int {
	if n.Progress == nil {
		return 0
	}
	return *n.Progress
}

// IsRoot reports whether the node has no parent reference.
func (n Node) IsRoot() bool {
	return n.ParentID == nil
}

// IntPtr is a convenience for building nodes with a progress value.
func IntPtr(v int) *int { return &v }

// IDPtr is a convenience for building nodes with a parent reference.
func IDPtr(v int64) *int64 { return &v }

// clone returns a deep copy of n.
func (n Node) clone() Node {
	c := n
	if n.Progress != nil {
		p := *n.Progress
		c.Progress = &p
	}
	if n.ParentID != nil {
		id := *n.ParentID
		c.ParentID = &id
	}
	if n.Children != nil {
		c.Children = make([]Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.clone()
		}
	}
	return c
}
