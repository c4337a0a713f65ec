// Package progress writes step completion to the roadmap provider and
// reconciles the shared Board with the outcome.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/pathway/internal/metrics"
	"github.com/abhisek/pathway/internal/provider"
	"github.com/abhisek/pathway/internal/roadmap"
)

// Result is the outcome of a single progress write.
type Result struct {
	StepID    int64
	Completed bool

	// Previous is the step's completion flag before the call.
	Previous bool
	// Found reports whether the step was present on the board.
	Found bool

	Err error
}

// OK reports whether the provider acknowledged the write.
func (r Result) OK() bool {
	return r.Err == nil
}

// Mutator sends progress writes and applies them to a Board.
// It is safe for concurrent use; for the same step the last response to
// arrive decides the board value.
type Mutator struct {
	provider provider.Provider
	board    *roadmap.Board
	log      *slog.Logger
}

// NewMutator creates a Mutator over board.
func NewMutator(p provider.Provider, board *roadmap.Board, log *slog.Logger) *Mutator {
	return &Mutator{provider: p, board: board, log: log}
}

// SetProgress sends the completion flag for id. The board is updated
// only after the provider acknowledges; a failure leaves it untouched.
func (m *Mutator) SetProgress(ctx context.Context, id int64, completed bool) Result {
	res := Result{StepID: id, Completed: completed}
	if n, ok := m.board.Get(id); ok {
		res.Previous, res.Found = n.Completed, true
	}

	if res.Err = m.send(ctx, id, completed); res.Err != nil {
		return res
	}
	m.board.SetCompleted(id, completed)
	return res
}

// Complete marks id completed on the board immediately, then sends the
// write. On failure the optimistic value stays; see Rollback.
func (m *Mutator) Complete(ctx context.Context, id int64) Result {
	return m.Send(ctx, m.Apply(id))
}

// Apply marks id completed on the board without contacting the provider.
// The returned Result records the prior value and is handed to Send.
func (m *Mutator) Apply(id int64) Result {
	res := Result{StepID: id, Completed: true}
	res.Previous, res.Found = m.board.SetCompleted(id, true)
	return res
}

// Send writes an applied Result to the provider and fills in Err.
func (m *Mutator) Send(ctx context.Context, res Result) Result {
	res.Err = m.send(ctx, res.StepID, res.Completed)
	return res
}

// Rollback restores the pre-call value of a failed result. It returns
// false when there is nothing to restore.
func (m *Mutator) Rollback(res Result) bool {
	if res.OK() || !res.Found {
		return false
	}
	_, ok := m.board.SetCompleted(res.StepID, res.Previous)
	if ok {
		m.log.Info("progress rolled back", "step_id", res.StepID, "completed", res.Previous)
	}
	return ok
}

// send performs the provider call. Failures are logged and returned,
// never panicked.
func (m *Mutator) send(ctx context.Context, id int64, completed bool) error {
	start := time.Now()
	_, err := m.provider.UpdateProgress(ctx, provider.ProgressUpdate{StepID: id, Completed: completed})
	metrics.RecordProgressUpdate(metrics.Outcome(err), time.Since(start).Seconds())

	if err != nil {
		m.log.Warn("progress update failed",
			"step_id", id,
			"completed", completed,
			"provider", m.provider.Name(),
			"error", err,
		)
		return fmt.Errorf("update progress for step %d: %w", id, err)
	}
	m.log.Debug("progress updated", "step_id", id, "completed", completed)
	return nil
}
