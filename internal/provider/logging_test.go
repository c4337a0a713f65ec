package provider

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathway/internal/roadmap"
	"github.com/abhisek/pathway/internal/store"
)

func openJournal(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestLoggingProvider_JournalsCalls(t *testing.T) {
	repo := openJournal(t)
	mock := NewMockProvider(
		MockResponse{Nodes: []roadmap.Node{{ID: 1, Label: "A", Track: "T"}, {ID: 2, Label: "B", Track: "T"}}},
		MockResponse{Err: &ErrStatus{Code: 500, Body: "boom"}},
	)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := WithLogging(mock, repo, log)
	ctx := context.Background()

	nodes, err := p.FetchRoadmap(ctx)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	_, err = p.UpdateProgress(ctx, ProgressUpdate{StepID: 2, Completed: true})
	require.Error(t, err)

	events, err := repo.QueryProviderEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	progress := events[0]
	assert.Equal(t, store.OpProgress, progress.Operation)
	assert.False(t, progress.Success)
	assert.Equal(t, 500, progress.StatusCode)
	require.NotNil(t, progress.StepID)
	assert.Equal(t, int64(2), *progress.StepID)
	assert.NotEmpty(t, progress.RequestID)

	fetch := events[1]
	assert.Equal(t, store.OpFetch, fetch.Operation)
	assert.True(t, fetch.Success)
	assert.Equal(t, 2, fetch.NodeCount)
	assert.Equal(t, "mock", fetch.Provider)

	assert.Contains(t, buf.String(), "provider call")
}

func TestLoggingProvider_KeepsCallerRequestID(t *testing.T) {
	repo := openJournal(t)
	p := WithLogging(NewMockProvider(MockResponse{}), repo, slog.New(slog.DiscardHandler))

	ctx := WithRequestID(context.Background(), "fixed-id")
	_, err := p.UpdateProgress(ctx, ProgressUpdate{StepID: 9})
	require.NoError(t, err)

	events, err := repo.QueryProviderEvents(context.Background(), store.QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fixed-id", events[0].RequestID)
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{}), nil, slog.New(slog.DiscardHandler))
	_, err := p.FetchRoadmap(context.Background())
	assert.NoError(t, err)
}
