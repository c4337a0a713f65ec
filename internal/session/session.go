// Package session wires one learner's roadmap session: the provider, the
// shared Board and the progress mutator. The TUI and the CLI commands
// both go through it.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/pathway/internal/progress"
	"github.com/abhisek/pathway/internal/provider"
	"github.com/abhisek/pathway/internal/roadmap"
)

// Options configures a Session.
type Options struct {
	// RollbackOnFailure restores the pre-call value when an optimistic
	// completion is rejected by the provider.
	RollbackOnFailure bool
}

// Session owns the Board for one learner.
type Session struct {
	provider provider.Provider
	board    *roadmap.Board
	mutator  *progress.Mutator
	log      *slog.Logger
	opts     Options
}

// New creates a Session with an empty Board.
func New(p provider.Provider, log *slog.Logger, opts Options) *Session {
	board := roadmap.NewBoard(nil)
	return &Session{
		provider: p,
		board:    board,
		mutator:  progress.NewMutator(p, board, log),
		log:      log,
		opts:     opts,
	}
}

// Board returns the shared board.
func (s *Session) Board() *roadmap.Board {
	return s.board
}

// ProviderName identifies the backing provider.
func (s *Session) ProviderName() string {
	return s.provider.Name()
}

// Load fetches the roadmap and replaces the board contents. On failure
// the board is left as it was and the error is returned for display or
// logging. Contract violations in the fetched steps are logged as
// warnings only.
func (s *Session) Load(ctx context.Context) error {
	nodes, err := s.provider.FetchRoadmap(ctx)
	if err != nil {
		s.log.Error("fetch roadmap failed", "provider", s.provider.Name(), "error", err)
		return fmt.Errorf("fetch roadmap: %w", err)
	}

	if verr := roadmap.Validate(nodes); verr != nil {
		s.log.Warn("roadmap contract violations", "error", verr)
	}

	s.board.Replace(nodes)
	s.log.Info("roadmap loaded", "nodes", s.board.Len(), "tracks", len(s.board.Tracks()))
	return nil
}

// Complete optimistically completes a step and sends the write. When
// rollback is enabled a rejected write restores the previous value.
func (s *Session) Complete(ctx context.Context, id int64) progress.Result {
	return s.SendComplete(ctx, s.ApplyComplete(id))
}

// ApplyComplete marks a step completed on the board only. Callers that
// redraw between the two halves use it with SendComplete.
func (s *Session) ApplyComplete(id int64) progress.Result {
	return s.mutator.Apply(id)
}

// SendComplete sends a completion applied by ApplyComplete.
func (s *Session) SendComplete(ctx context.Context, applied progress.Result) progress.Result {
	res := s.mutator.Send(ctx, applied)
	if !res.OK() && s.opts.RollbackOnFailure {
		s.mutator.Rollback(res)
	}
	return res
}

// SetProgress sends a completion flag and applies it once acknowledged.
func (s *Session) SetProgress(ctx context.Context, id int64, completed bool) progress.Result {
	return s.mutator.SetProgress(ctx, id, completed)
}

// Toggle flips a step's completion through SetProgress. Unknown ids
// return a failed result with roadmap.ErrNodeNotFound.
func (s *Session) Toggle(ctx context.Context, id int64) progress.Result {
	n, ok := s.board.Get(id)
	if !ok {
		return progress.Result{StepID: id, Err: fmt.Errorf("step %d: %w", id, roadmap.ErrNodeNotFound)}
	}
	return s.SetProgress(ctx, id, !n.Completed)
}
