package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const providerEventsTable = "provider_events"

var providerEventColumns = []string{
	"id", "sequence", "timestamp_ms", "request_id", "provider", "operation",
	"step_id", "completed", "node_count", "status_code", "latency_ms",
	"success", "error_message",
}

// eventRepo implements EventRepo on top of database/sql, with queries
// built by the ent SQL builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendProviderEvent(ctx context.Context, data ProviderEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var stepID, completed any
	if data.StepID != nil {
		stepID = *data.StepID
	}
	if data.Completed != nil {
		completed = *data.Completed
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(providerEventsTable).
		Columns(providerEventColumns[1:]...).
		Values(
			seqNum,
			time.Now().UTC().UnixMilli(),
			data.RequestID,
			data.Provider,
			data.Operation,
			stepID,
			completed,
			data.NodeCount,
			data.StatusCode,
			data.LatencyMs,
			data.Success,
			data.ErrorMessage,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save provider event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryProviderEvents(ctx context.Context, opts QueryOpts) ([]ProviderEvent, error) {
	b := entsql.Dialect(dialect.SQLite)
	t := b.Table(providerEventsTable)

	cols := make([]string, len(providerEventColumns))
	for i, c := range providerEventColumns {
		cols[i] = t.C(c)
	}
	sel := b.Select(cols...).From(t)
	if opts.After > 0 {
		sel.Where(entsql.GT(t.C("sequence"), opts.After))
	}
	if opts.Operation != "" {
		sel.Where(entsql.EQ(t.C("operation"), opts.Operation))
	}
	sel.OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query provider events: %w", err)
	}
	defer rows.Close()

	var events []ProviderEvent
	for rows.Next() {
		var (
			e         ProviderEvent
			tsMs      int64
			stepID    sql.NullInt64
			completed sql.NullBool
		)
		if err := rows.Scan(
			&e.ID, &e.Sequence, &tsMs, &e.RequestID, &e.Provider, &e.Operation,
			&stepID, &completed, &e.NodeCount, &e.StatusCode, &e.LatencyMs,
			&e.Success, &e.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan provider event: %w", err)
		}
		e.Timestamp = time.UnixMilli(tsMs).UTC()
		if stepID.Valid {
			id := stepID.Int64
			e.StepID = &id
		}
		if completed.Valid {
			c := completed.Bool
			e.Completed = &c
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows provider events: %w", err)
	}
	return events, nil
}
