package roadmap

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/progress"
	"github.com/abhisek/pathway/internal/router"
	rm "github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/screen"
	"github.com/abhisek/pathway/internal/session"
	"github.com/abhisek/pathway/internal/ui/layout"
	"github.com/abhisek/pathway/internal/ui/theme"
)

// ViewMode selects how a track is drawn.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewTree
)

func (v ViewMode) String() string {
	if v == ViewTree {
		return "tree"
	}
	return "list"
}

// SortMode selects the sibling ordering.
type SortMode int

const (
	SortOrder SortMode = iota
	SortCompletedLast
)

func (s SortMode) apply(nodes []rm.Node) []rm.Node {
	if s == SortCompletedLast {
		return rm.SortTree(nodes, rm.SortCompletedLast)
	}
	return rm.SortTree(nodes, rm.SortByOrder)
}

func (s SortMode) String() string {
	if s == SortCompletedLast {
		return "unfinished first"
	}
	return "course order"
}

// EmptyMessage is shown when a track has no steps.
const EmptyMessage = "No steps for this track."

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	View     key.Binding
	Sort     key.Binding
	Toggle   key.Binding
	Complete key.Binding
	Detail   key.Binding
	Reload   key.Binding
	Back     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	View:     key.NewBinding(key.WithKeys("v")),
	Sort:     key.NewBinding(key.WithKeys("s")),
	Toggle:   key.NewBinding(key.WithKeys("c")),
	Complete: key.NewBinding(key.WithKeys("enter")),
	Detail:   key.NewBinding(key.WithKeys("d")),
	Reload:   key.NewBinding(key.WithKeys("r")),
	Back:     key.NewBinding(key.WithKeys("q")),
}

// RoadmapScreen renders one track as a nested list or a tree. It keeps
// no node state of its own; every frame is derived from the session
// board.
type RoadmapScreen struct {
	sess   *session.Session
	track  string
	mode   ViewMode
	sort   SortMode
	cursor int
	scroll int

	status    string
	statusErr bool
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)
var _ screen.StatusProvider = (*RoadmapScreen)(nil)

// New creates a RoadmapScreen for track.
func New(sess *session.Session, track string, mode ViewMode) *RoadmapScreen {
	return &RoadmapScreen{sess: sess, track: track, mode: mode}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (s *RoadmapScreen) Title() string {
	return s.track
}

// Mode returns the current view mode.
func (s *RoadmapScreen) Mode() ViewMode {
	return s.mode
}

// Status returns the current status line text.
func (s *RoadmapScreen) Status() string {
	return s.status
}

func (s *RoadmapScreen) HeaderStatus() string {
	st := s.sess.Board().Stats(s.track)
	return fmt.Sprintf("✔ %d/%d", st.Completed, st.Total)
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}}
	if s.mode == ViewTree {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: rm.ActionMarkComplete})
	} else {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Toggle done"})
	}
	return append(hints,
		layout.KeyHint{Key: "d", Description: "Details"},
		layout.KeyHint{Key: "v", Description: "List/Tree"},
		layout.KeyHint{Key: "s", Description: "Sort"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		s.setResult(msg.Result)
		return s, nil

	case LoadedMsg:
		s.clampCursor()
		if msg.Err != nil {
			// The board keeps its last contents and the error is logged.
			s.setStatus("", false)
		} else {
			s.setStatus("roadmap reloaded", false)
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			s.move(-1)
		case key.Matches(msg, keys.Down):
			s.move(1)
		case key.Matches(msg, keys.View):
			s.toggleView()
		case key.Matches(msg, keys.Sort):
			s.toggleSort()
		case key.Matches(msg, keys.Toggle):
			// Tree rows only ever complete a step.
			if s.mode != ViewList {
				return s, nil
			}
			if id, ok := s.selectedID(); ok {
				return s, toggleCmd(s.sess, id)
			}
		case key.Matches(msg, keys.Complete):
			return s, s.handleComplete()
		case key.Matches(msg, keys.Detail):
			if id, ok := s.selectedID(); ok {
				detail := NewDetail(s.sess, id)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
			}
		case key.Matches(msg, keys.Reload):
			s.setStatus("reloading…", false)
			return s, LoadCmd(s.sess)
		case key.Matches(msg, keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// handleComplete completes the selected step. In the tree view this is
// the row's Mark Complete button; completed rows have no button. In the
// list view enter opens the detail screen instead.
func (s *RoadmapScreen) handleComplete() tea.Cmd {
	id, ok := s.selectedID()
	if !ok {
		return nil
	}
	if s.mode == ViewList {
		detail := NewDetail(s.sess, id)
		return func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
	}
	if n, found := s.sess.Board().Get(id); !found || n.Completed {
		return nil
	}
	return completeCmd(s.sess, id)
}

func (s *RoadmapScreen) setResult(res progress.Result) {
	if res.OK() {
		state := "complete"
		if !res.Completed {
			state = "not complete"
		}
		s.setStatus(fmt.Sprintf("step %d marked %s", res.StepID, state), false)
		return
	}
	s.setStatus(fmt.Sprintf("could not save progress for step %d", res.StepID), true)
}

func (s *RoadmapScreen) setStatus(text string, isErr bool) {
	s.status, s.statusErr = text, isErr
}

func (s *RoadmapScreen) toggleView() {
	id, ok := s.selectedID()
	if s.mode == ViewList {
		s.mode = ViewTree
	} else {
		s.mode = ViewList
	}
	if ok {
		s.selectID(id)
	}
}

func (s *RoadmapScreen) toggleSort() {
	id, ok := s.selectedID()
	if s.sort == SortOrder {
		s.sort = SortCompletedLast
	} else {
		s.sort = SortOrder
	}
	if ok {
		s.selectID(id)
	}
	s.setStatus("sorted by "+s.sort.String(), false)
}

// tree derives the sorted node tree for the track.
func (s *RoadmapScreen) tree() []rm.Node {
	return s.sort.apply(s.sess.Board().Tree(s.track))
}

// rowIDs returns the step ids in display order. Both views walk the tree
// depth first, so the order is the same in either mode.
func (s *RoadmapScreen) rowIDs() []int64 {
	items := rm.Flatten(s.tree())
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func (s *RoadmapScreen) selectedID() (int64, bool) {
	ids := s.rowIDs()
	if s.cursor < 0 || s.cursor >= len(ids) {
		return 0, false
	}
	return ids[s.cursor], true
}

func (s *RoadmapScreen) selectID(id int64) {
	for i, rid := range s.rowIDs() {
		if rid == id {
			s.cursor = i
			return
		}
	}
	s.clampCursor()
}

func (s *RoadmapScreen) move(delta int) {
	s.cursor += delta
	s.clampCursor()
}

func (s *RoadmapScreen) clampCursor() {
	n := len(s.rowIDs())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	tree := s.tree()
	if len(tree) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render(EmptyMessage)
	}

	var lines [][]string
	if s.mode == ViewTree {
		lines = s.renderTree(tree, width)
	} else {
		lines = s.renderList(tree, width, height)
	}

	header := theme.Section.Render(fmt.Sprintf("  %s  ", strings.ToUpper(s.track))) +
		theme.Hint.Render(fmt.Sprintf("%s view · %s", s.mode, s.sort))
	footer := s.renderStatus()

	body := s.window(lines, layout.Remaining(height, chromeLines))
	return "\n" + header + "\n\n" + strings.Join(body, "\n") + "\n" + footer
}

// chromeLines is the space View takes around the rows: a blank line, the
// track header, a gap and the status line.
const chromeLines = 4

// window keeps the cursor's lines visible within height. Each step may
// span several lines in list mode, so lines are grouped per step.
func (s *RoadmapScreen) window(groups [][]string, height int) []string {
	if height < 1 {
		height = 1
	}
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	}
	for {
		used := 0
		for i := s.scroll; i <= s.cursor && i < len(groups); i++ {
			used += len(groups[i])
		}
		if used <= height || s.scroll >= s.cursor {
			break
		}
		s.scroll++
	}

	var out []string
	for i := s.scroll; i < len(groups); i++ {
		if len(out)+len(groups[i]) > height && len(out) > 0 {
			break
		}
		out = append(out, groups[i]...)
	}
	return out
}

func (s *RoadmapScreen) renderStatus() string {
	if s.status == "" {
		return ""
	}
	if s.statusErr {
		return theme.StatusError.Render("  " + s.status)
	}
	return theme.StatusInfo.Render("  " + s.status)
}
