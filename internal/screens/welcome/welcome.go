package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/router"
	"github.com/abhisek/pathway/internal/screen"
	"github.com/abhisek/pathway/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const signpostArt = `      ┌───────────┐
      │  LEARN  ▶ │
      └─────┬─────┘
  ┌─────────┴─┐
  │ ◀  BUILD  │
  └─────────┬─┘
      ┌─────┴─────┐
      │  SHIP   ▶ │
      └─────┬─────┘
            │`

// marker frames cycle beside the signpost
var markerFrames = []string{"●", "○"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the
// track list. Any key skips ahead.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	signStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: signpost
	rendered := signStyle.Render(signpostArt)

	// Phase 2+: blinking markers beside each sign
	if w.elapsed >= phase1End {
		marker := markerFrames[w.tickCount%len(markerFrames)]

		done := lipgloss.NewStyle().Foreground(theme.Success).Render(marker)
		next := lipgloss.NewStyle().Foreground(theme.Accent).Render(marker)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = done + " " + lines[1]
		}
		if len(lines) > 4 {
			lines[4] = done + " " + lines[4]
		}
		if len(lines) > 7 {
			lines[7] = next + " " + lines[7]
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("One step at a time.")
		sections = append(sections, tagline)
	}

	// "press any key" hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
