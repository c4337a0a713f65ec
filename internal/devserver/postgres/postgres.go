// Package postgres implements devserver.Repository on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisek/pathway/internal/devserver"
	"github.com/abhisek/pathway/internal/roadmap"
)

// PGRepository implements devserver.Repository using PostgreSQL.
type PGRepository struct {
	db *pgxpool.Pool
}

var _ devserver.Repository = (*PGRepository)(nil)

// New creates a PGRepository backed by the given pgx connection pool.
func New(db *pgxpool.Pool) *PGRepository {
	return &PGRepository{db: db}
}

// Connect opens a pool for databaseURL and ensures the schema exists.
func Connect(ctx context.Context, databaseURL string) (*PGRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("roadmap: connect: %w", err)
	}
	repo := New(pool)
	if err := repo.CreateSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("roadmap: create schema: %w", err)
	}
	return repo, nil
}

// Close releases the pool.
func (r *PGRepository) Close() {
	r.db.Close()
}

// Seed replaces all steps in a single transaction.
func (r *PGRepository) Seed(ctx context.Context, nodes []roadmap.Node) error {
	flat := roadmap.NewBoard(nodes).Nodes()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("roadmap: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM roadmap_steps`); err != nil {
		return fmt.Errorf("roadmap: delete steps: %w", err)
	}

	for i, n := range flat {
		if _, err := tx.Exec(ctx,
			`INSERT INTO roadmap_steps
			   (id, position, label, description, completed, progress, order_index, track, parent_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			n.ID, i, n.Label, n.Description, n.Completed, n.Progress, n.OrderIndex, n.Track, n.ParentID,
		); err != nil {
			return fmt.Errorf("roadmap: insert step %d: %w", n.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("roadmap: commit: %w", err)
	}
	return nil
}

// ListSteps returns all steps in seed order.
// Returns an empty slice (not nil) if none found.
func (r *PGRepository) ListSteps(ctx context.Context) ([]roadmap.Node, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, label, description, completed, progress, order_index, track, parent_id
		   FROM roadmap_steps ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("roadmap: list steps: %w", err)
	}

	steps, err := pgx.CollectRows(rows, scanStep)
	if err != nil {
		return nil, fmt.Errorf("roadmap: scan steps: %w", err)
	}
	if steps == nil {
		steps = []roadmap.Node{}
	}
	return steps, nil
}

// SetCompleted updates a step's completion flag.
// Returns devserver.ErrStepNotFound if the step doesn't exist.
func (r *PGRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE roadmap_steps SET completed = $1, updated_at = NOW() WHERE id = $2`,
		completed, id,
	)
	if err != nil {
		return fmt.Errorf("roadmap: update step: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return devserver.ErrStepNotFound
	}
	return nil
}

// CompletedCount returns how many steps are completed.
func (r *PGRepository) CompletedCount(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM roadmap_steps WHERE completed`,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("roadmap: count completed: %w", err)
	}
	return n, nil
}

func scanStep(row pgx.CollectableRow) (roadmap.Node, error) {
	var n roadmap.Node
	err := row.Scan(&n.ID, &n.Label, &n.Description, &n.Completed, &n.Progress, &n.OrderIndex, &n.Track, &n.ParentID)
	return n, err
}
