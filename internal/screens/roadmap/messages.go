package roadmap

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathway/internal/progress"
	"github.com/abhisek/pathway/internal/router"
	"github.com/abhisek/pathway/internal/session"
)

// LoadedMsg reports a finished roadmap fetch. It is broadcast so every
// screen on the stack rebuilds from the refreshed board.
type LoadedMsg struct {
	Err error
}

// progressDoneMsg carries the outcome of a progress write.
type progressDoneMsg struct {
	Result progress.Result
}

// LoadCmd fetches the roadmap into the session board.
func LoadCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return router.BroadcastMsg{Msg: LoadedMsg{Err: sess.Load(context.Background())}}
	}
}

// completeCmd marks the step completed on the board right away and
// returns a command that sends the write.
func completeCmd(sess *session.Session, id int64) tea.Cmd {
	applied := sess.ApplyComplete(id)
	return func() tea.Msg {
		return progressDoneMsg{Result: sess.SendComplete(context.Background(), applied)}
	}
}

// toggleCmd flips completion through an acknowledged write.
func toggleCmd(sess *session.Session, id int64) tea.Cmd {
	return func() tea.Msg {
		return progressDoneMsg{Result: sess.Toggle(context.Background(), id)}
	}
}
