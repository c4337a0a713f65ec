package provider

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathway/internal/metrics"
	"github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/store"
)

// LoggingProvider is a decorator that journals every provider call.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
	log    *slog.Logger
}

// WithLogging wraps a Provider with journaling. A nil repo only logs.
func WithLogging(p Provider, repo store.EventRepo, log *slog.Logger) Provider {
	return &LoggingProvider{inner: p, events: repo, log: log}
}

func (l *LoggingProvider) FetchRoadmap(ctx context.Context) ([]roadmap.Node, error) {
	ctx, reqID := ensureRequestID(ctx)
	start := time.Now()

	nodes, err := l.inner.FetchRoadmap(ctx)

	data := store.ProviderEventData{
		RequestID: reqID,
		Provider:  l.inner.Name(),
		Operation: store.OpFetch,
		NodeCount: len(nodes),
		LatencyMs: time.Since(start).Milliseconds(),
	}
	l.finish(ctx, data, http.StatusOK, err)
	return nodes, err
}

func (l *LoggingProvider) UpdateProgress(ctx context.Context, update ProgressUpdate) (*Ack, error) {
	ctx, reqID := ensureRequestID(ctx)
	start := time.Now()

	ack, err := l.inner.UpdateProgress(ctx, update)

	stepID, completed := update.StepID, update.Completed
	data := store.ProviderEventData{
		RequestID: reqID,
		Provider:  l.inner.Name(),
		Operation: store.OpProgress,
		StepID:    &stepID,
		Completed: &completed,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	okStatus := http.StatusOK
	if ack != nil {
		okStatus = ack.StatusCode
	}
	l.finish(ctx, data, okStatus, err)
	return ack, err
}

func (l *LoggingProvider) Name() string {
	return l.inner.Name()
}

// finish fills the outcome fields, then logs and journals the call.
func (l *LoggingProvider) finish(ctx context.Context, data store.ProviderEventData, okStatus int, err error) {
	data.Success = err == nil
	if err != nil {
		data.StatusCode = StatusCode(err)
		data.ErrorMessage = err.Error()
	} else {
		data.StatusCode = okStatus
	}

	metrics.RecordProviderRequest(data.Operation, metrics.Outcome(err))

	l.log.Debug("provider call",
		"request_id", data.RequestID,
		"operation", data.Operation,
		"status", data.StatusCode,
		"latency_ms", data.LatencyMs,
		"success", data.Success,
	)

	if l.events == nil {
		return
	}
	// A journal failure never fails the call.
	if logErr := l.events.AppendProviderEvent(context.WithoutCancel(ctx), data); logErr != nil {
		l.log.Warn("failed to journal provider call", "request_id", data.RequestID, "error", logErr)
	}
}

func ensureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFrom(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
