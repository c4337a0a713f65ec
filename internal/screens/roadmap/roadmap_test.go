package roadmap

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathway/internal/provider"
	"github.com/abhisek/pathway/internal/router"
	rm "github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/session"
)

func webNodes() []rm.Node {
	return []rm.Node{
		{ID: 1, Label: "HTML Basics", OrderIndex: 1, Track: "Web Development"},
		{ID: 2, Label: "Forms", OrderIndex: 2, Track: "Web Development", ParentID: rm.IDPtr(1)},
		{ID: 3, Label: "Semantics", OrderIndex: 1, Track: "Web Development", ParentID: rm.IDPtr(1), Completed: true},
		{ID: 4, Label: "CSS Layout", Description: "Flexbox and grid.", OrderIndex: 2, Track: "Web Development", Progress: rm.IntPtr(40)},
	}
}

func newSession(t *testing.T, extra ...provider.MockResponse) (*session.Session, *provider.MockProvider) {
	t.Helper()
	mock := provider.NewMockProvider(provider.MockResponse{Nodes: webNodes()})
	for _, r := range extra {
		mock.AddResponse(r)
	}
	sess := session.New(mock, slog.New(slog.DiscardHandler), session.Options{})
	require.NoError(t, sess.Load(context.Background()))
	return sess, mock
}

func press(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// run feeds a command's message back into the screen.
func run(t *testing.T, s *RoadmapScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	s.Update(msg)
	return msg
}

func TestRowOrder(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)

	assert.Equal(t, []int64{1, 3, 2, 4}, s.rowIDs())

	s.Update(press("s"))
	assert.Equal(t, []int64{1, 2, 3, 4}, s.rowIDs())
	assert.Equal(t, "sorted by unfinished first", s.Status())
}

func TestCursorMovement(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)

	s.Update(press("up"))
	id, ok := s.selectedID()
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	for range 10 {
		s.Update(press("j"))
	}
	id, _ = s.selectedID()
	assert.Equal(t, int64(4), id)

	s.Update(press("k"))
	id, _ = s.selectedID()
	assert.Equal(t, int64(2), id)
}

func TestToggleViewKeepsSelection(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)
	s.Update(press("down"))
	s.Update(press("down"))

	s.Update(press("v"))
	assert.Equal(t, ViewTree, s.Mode())
	id, _ := s.selectedID()
	assert.Equal(t, int64(2), id)

	s.Update(press("v"))
	assert.Equal(t, ViewList, s.Mode())
}

func TestListView(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)

	view := s.View(100, 30)
	assert.Contains(t, view, "HTML Basics")
	assert.Contains(t, view, rm.ActionStartLater)
	assert.Contains(t, view, rm.ActionContinue)
	assert.Contains(t, view, rm.StatusCompleted)
	assert.Contains(t, view, "Flexbox and grid.")
	assert.Contains(t, view, "40%")
}

func TestListView_ShortTerminalDropsDescriptions(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)

	view := s.View(120, 20)
	assert.Contains(t, view, "CSS Layout")
	assert.NotContains(t, view, "Flexbox and grid.")
	assert.Contains(t, view, "40%")
}

func TestTreeView(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewTree)

	view := s.View(100, 30)
	assert.Contains(t, view, "├─ ")
	assert.Contains(t, view, "└─ ")
	assert.Contains(t, view, rm.ActionMarkComplete)
	assert.Contains(t, view, rm.StatusCompleted)
	assert.NotContains(t, view, rm.ActionContinue)
}

func TestEmptyTrack(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Underwater Basket Weaving", ViewTree)

	assert.Contains(t, s.View(80, 20), EmptyMessage)
	_, cmd := s.Update(press("enter"))
	assert.Nil(t, cmd)
}

func TestHandleComplete(t *testing.T) {
	sess, mock := newSession(t, provider.MockResponse{})
	s := New(sess, "Web Development", ViewTree)

	_, cmd := s.Update(press("enter"))
	msg := run(t, s, cmd)

	done, ok := msg.(progressDoneMsg)
	require.True(t, ok)
	assert.True(t, done.Result.OK())
	n, _ := sess.Board().Get(1)
	assert.True(t, n.Completed)
	require.Len(t, mock.Updates, 1)
	assert.Equal(t, provider.ProgressUpdate{StepID: 1, Completed: true}, mock.Updates[0])
	assert.Equal(t, "step 1 marked complete", s.Status())
	assert.Equal(t, "✔ 2/4", s.HeaderStatus())
}

func TestHandleComplete_AppliesBeforeWrite(t *testing.T) {
	sess, mock := newSession(t, provider.MockResponse{})
	s := New(sess, "Web Development", ViewTree)
	require.Equal(t, 1, strings.Count(s.View(100, 30), rm.StatusCompleted))

	_, cmd := s.Update(press("enter"))
	require.NotNil(t, cmd)

	n, _ := sess.Board().Get(1)
	assert.True(t, n.Completed)
	assert.Equal(t, 2, strings.Count(s.View(100, 30), rm.StatusCompleted))
	assert.Zero(t, mock.UpdateCount())

	run(t, s, cmd)
	assert.Equal(t, 1, mock.UpdateCount())
}

func TestHandleComplete_CompletedRowHasNoButton(t *testing.T) {
	sess, mock := newSession(t)
	s := New(sess, "Web Development", ViewTree)
	s.Update(press("down"))

	_, cmd := s.Update(press("enter"))
	assert.Nil(t, cmd)
	assert.Zero(t, mock.UpdateCount())
}

func TestHandleComplete_FailureKeepsOptimisticValue(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewTree)

	_, cmd := s.Update(press("enter"))
	msg := run(t, s, cmd)

	assert.False(t, msg.(progressDoneMsg).Result.OK())
	n, _ := sess.Board().Get(1)
	assert.True(t, n.Completed)
	assert.Equal(t, "could not save progress for step 1", s.Status())
	assert.Contains(t, s.View(100, 30), "could not save progress for step 1")
}

func TestToggle(t *testing.T) {
	sess, _ := newSession(t, provider.MockResponse{})
	s := New(sess, "Web Development", ViewList)
	s.Update(press("down"))

	_, cmd := s.Update(press("c"))
	run(t, s, cmd)

	n, _ := sess.Board().Get(3)
	assert.False(t, n.Completed)
	assert.Equal(t, "step 3 marked not complete", s.Status())
}

func TestToggle_IgnoredInTreeView(t *testing.T) {
	sess, mock := newSession(t, provider.MockResponse{})
	s := New(sess, "Web Development", ViewTree)
	s.Update(press("down"))
	id, _ := s.selectedID()
	require.Equal(t, int64(3), id)

	_, cmd := s.Update(press("c"))
	assert.Nil(t, cmd)

	n, _ := sess.Board().Get(3)
	assert.True(t, n.Completed)
	assert.Zero(t, mock.UpdateCount())
	assert.Contains(t, s.View(100, 30), rm.StatusCompleted)
}

func TestEnterInListOpensDetail(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)

	_, cmd := s.Update(press("enter"))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	detail, ok := push.Screen.(*DetailScreen)
	require.True(t, ok)
	assert.Equal(t, "HTML Basics", detail.Title())
}

func TestReload(t *testing.T) {
	sess, mock := newSession(t)
	s := New(sess, "Web Development", ViewList)
	mock.AddResponse(provider.MockResponse{Nodes: webNodes()[:2]})
	s.Update(press("down"))
	s.Update(press("down"))
	s.Update(press("down"))

	_, cmd := s.Update(press("r"))
	require.NotNil(t, cmd)
	bcast, ok := cmd().(router.BroadcastMsg)
	require.True(t, ok)
	s.Update(bcast.Msg)

	assert.Equal(t, 2, mock.FetchCalls)
	assert.Equal(t, "roadmap reloaded", s.Status())
	id, _ := s.selectedID()
	assert.Equal(t, int64(2), id)
}

func TestReload_FailureShowsLastBoard(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewTree)

	_, cmd := s.Update(press("r"))
	bcast, ok := cmd().(router.BroadcastMsg)
	require.True(t, ok)
	s.Update(bcast.Msg)

	assert.Empty(t, s.Status())
	view := s.View(100, 30)
	assert.Contains(t, view, "HTML Basics")
	assert.NotContains(t, view, "could not")
}

func TestBackKey(t *testing.T) {
	sess, _ := newSession(t)
	s := New(sess, "Web Development", ViewList)

	_, cmd := s.Update(press("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
