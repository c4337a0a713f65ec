package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS roadmap_steps (
    id          BIGINT PRIMARY KEY,
    position    INTEGER NOT NULL,
    label       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    completed   BOOLEAN NOT NULL DEFAULT FALSE,
    progress    INTEGER CHECK (progress BETWEEN 0 AND 100),
    order_index INTEGER NOT NULL DEFAULT 0,
    track       TEXT NOT NULL,
    parent_id   BIGINT,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_roadmap_steps_track    ON roadmap_steps(track);
CREATE INDEX IF NOT EXISTS idx_roadmap_steps_position ON roadmap_steps(position);
`

// CreateSchema creates the roadmap_steps table if it doesn't exist.
func (r *PGRepository) CreateSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the roadmap_steps table.
func (r *PGRepository) DropSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DROP TABLE IF EXISTS roadmap_steps;`)
	return err
}
