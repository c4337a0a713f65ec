package store

import (
	"context"
	"time"
)

// Provider operations recorded in the journal.
const (
	OpFetch    = "fetch"
	OpProgress = "progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	Operation string // exact operation match ("" = any)
}

// ProviderEventData captures a single call to the roadmap provider.
type ProviderEventData struct {
	RequestID    string
	Provider     string
	Operation    string
	StepID       *int64
	Completed    *bool
	NodeCount    int
	StatusCode   int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ProviderEvent is a journaled provider call.
type ProviderEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProviderEventData
}

// EventRepo provides append and query access to the provider journal.
type EventRepo interface {
	// AppendProviderEvent records a provider call.
	AppendProviderEvent(ctx context.Context, data ProviderEventData) error

	// QueryProviderEvents returns events newest first.
	QueryProviderEvents(ctx context.Context, opts QueryOpts) ([]ProviderEvent, error)
}
