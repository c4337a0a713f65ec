// Package devserver is a small roadmap provider for local development.
//
// It serves the same JSON endpoints the client expects from the real
// marketplace backend, guarded by a session cookie, with steps held in
// memory or in PostgreSQL.
package devserver

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/pathway/internal/roadmap"
)

var ErrStepNotFound = errors.New("devserver: step not found")

// Repository defines the contract for storing roadmap steps.
type Repository interface {
	// Seed replaces every stored step with nodes. Nested children are
	// stored flat with their parent id.
	Seed(ctx context.Context, nodes []roadmap.Node) error

	// ListSteps returns every step flat, in seed order.
	ListSteps(ctx context.Context) ([]roadmap.Node, error)

	// SetCompleted updates one step's completion flag.
	// Returns ErrStepNotFound if the step doesn't exist.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// CompletedCount returns how many steps are completed.
	CompletedCount(ctx context.Context) (int, error)
}

// MemoryRepository implements Repository in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []int64
	steps map[int64]roadmap.Node
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{steps: make(map[int64]roadmap.Node)}
}

func (r *MemoryRepository) Seed(_ context.Context, nodes []roadmap.Node) error {
	flat := roadmap.NewBoard(nodes).Nodes()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = make([]int64, 0, len(flat))
	r.steps = make(map[int64]roadmap.Node, len(flat))
	for _, n := range flat {
		r.order = append(r.order, n.ID)
		r.steps[n.ID] = n
	}
	return nil
}

func (r *MemoryRepository) ListSteps(_ context.Context) ([]roadmap.Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]roadmap.Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.steps[id])
	}
	return out, nil
}

func (r *MemoryRepository) SetCompleted(_ context.Context, id int64, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.steps[id]
	if !ok {
		return ErrStepNotFound
	}
	n.Completed = completed
	r.steps[id] = n
	return nil
}

func (r *MemoryRepository) CompletedCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, n := range r.steps {
		if n.Completed {
			count++
		}
	}
	return count, nil
}
