// Package tracks is the home screen: one entry per learning track with
// its completion, filtered by an optional search query.
package tracks

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/router"
	rm "github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/screen"
	roadmapscreen "github.com/abhisek/pathway/internal/screens/roadmap"
	"github.com/abhisek/pathway/internal/session"
	"github.com/abhisek/pathway/internal/ui/components"
	"github.com/abhisek/pathway/internal/ui/layout"
	"github.com/abhisek/pathway/internal/ui/theme"
)

var (
	searchKey = key.NewBinding(key.WithKeys("/"))
	reloadKey = key.NewBinding(key.WithKeys("r"))
	viewKey   = key.NewBinding(key.WithKeys("v"))
	quitKey   = key.NewBinding(key.WithKeys("q"))
	cancelKey = key.NewBinding(key.WithKeys("esc"))
	acceptKey = key.NewBinding(key.WithKeys("enter"))
)

const labelWidth = 24

// TracksScreen lists the learning tracks on the session board.
type TracksScreen struct {
	sess    *session.Session
	menu    components.Menu
	search  components.SearchInput
	spinner spinner.Model
	mode    roadmapscreen.ViewMode

	loading bool
	tracks  []string
}

var _ screen.Screen = (*TracksScreen)(nil)
var _ screen.KeyHintProvider = (*TracksScreen)(nil)
var _ screen.StatusProvider = (*TracksScreen)(nil)
var _ screen.InputCapturer = (*TracksScreen)(nil)

// New creates a TracksScreen. Tracks open in mode.
func New(sess *session.Session, mode roadmapscreen.ViewMode) *TracksScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	s := &TracksScreen{
		sess:    sess,
		search:  components.NewSearchInput("filter tracks and steps", 64),
		spinner: sp,
		mode:    mode,
		loading: true,
	}
	s.menu = components.NewMenu(nil)
	s.menu.LabelWidth = labelWidth
	return s
}

// Init starts the roadmap fetch.
func (s *TracksScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, roadmapscreen.LoadCmd(s.sess))
}

func (s *TracksScreen) Title() string {
	return "Tracks"
}

// Tracks returns the tracks currently listed, after filtering.
func (s *TracksScreen) Tracks() []string {
	return s.tracks
}

// Loading reports whether a fetch is in flight.
func (s *TracksScreen) Loading() bool {
	return s.loading
}

func (s *TracksScreen) CapturingInput() bool {
	return s.search.Focused()
}

func (s *TracksScreen) HeaderStatus() string {
	if s.loading && s.sess.Board().Len() == 0 {
		return ""
	}
	t := s.sess.Board().Totals()
	return fmt.Sprintf("✔ %d/%d", t.Completed, t.Total)
}

func (s *TracksScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Search"},
		{Key: "v", Description: "Open as " + s.otherMode().String()},
		{Key: "r", Description: "Reload"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *TracksScreen) otherMode() roadmapscreen.ViewMode {
	if s.mode == roadmapscreen.ViewTree {
		return roadmapscreen.ViewList
	}
	return roadmapscreen.ViewTree
}

func (s *TracksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case roadmapscreen.LoadedMsg:
		// Fetch errors are logged by the session; the screen shows
		// whatever the board holds.
		s.loading = false
		s.rebuild()
		return s, nil

	case tea.KeyMsg:
		if s.search.Focused() {
			return s, s.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, searchKey):
			return s, s.search.Focus()
		case key.Matches(msg, reloadKey):
			if s.loading {
				return s, nil
			}
			s.loading = true
			return s, tea.Batch(s.spinner.Tick, roadmapscreen.LoadCmd(s.sess))
		case key.Matches(msg, viewKey):
			s.mode = s.otherMode()
			return s, nil
		case key.Matches(msg, quitKey):
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TracksScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, cancelKey):
		s.search.Blur()
		s.search.Reset()
		s.rebuild()
		return nil
	case key.Matches(msg, acceptKey):
		s.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.rebuild()
	return cmd
}

// rebuild recomputes the menu from the board and the search query.
func (s *TracksScreen) rebuild() {
	board := s.sess.Board()
	groups := board.Groups()
	query := s.search.Query()

	s.tracks = nil
	items := make([]components.MenuItem, 0, groups.Len())
	for _, track := range groups.Keys() {
		if !matches(track, groups.Nodes(track), query) {
			continue
		}
		s.tracks = append(s.tracks, track)

		st := board.Stats(track)
		bar := components.NewProgressBar("", int(st.Percent()*100), false, 24).View()
		detail := bar + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", st.Completed, st.Total))

		items = append(items, components.MenuItem{
			Label:  track,
			Detail: detail,
			Action: func() tea.Cmd {
				next := roadmapscreen.New(s.sess, track, s.mode)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		})
	}
	s.menu.SetItems(items)
}

// matches reports whether the track name or any of its step labels
// contains query. An empty query matches everything.
func matches(track string, nodes []rm.Node, query string) bool {
	if query == "" || strings.Contains(strings.ToLower(track), query) {
		return true
	}
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Label), query) {
			return true
		}
	}
	return false
}

func (s *TracksScreen) View(width, height int) string {
	if s.loading && s.sess.Board().Len() == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.spinner.View()+" "+theme.Hint.Render("Loading roadmap…"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Section.Render("  YOUR TRACKS"))
	if s.loading {
		b.WriteString("  " + s.spinner.View())
	}
	b.WriteString("\n\n")

	switch {
	case len(s.tracks) == 0 && s.search.Query() != "":
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  Nothing matches %q.", s.search.Query())))
		b.WriteString("\n")
	case len(s.tracks) == 0:
		b.WriteString(theme.Hint.Render("  No tracks yet."))
		b.WriteString("\n")
	default:
		b.WriteString(s.menu.View())
	}

	b.WriteString("\n")
	b.WriteString(s.search.View())

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}
