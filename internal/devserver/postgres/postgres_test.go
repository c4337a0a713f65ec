package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathway/internal/devserver"
	"github.com/abhisek/pathway/internal/roadmap"
)

// These tests need a disposable database in PATHWAY_TEST_DATABASE_URL.
func testRepo(t *testing.T) *PGRepository {
	t.Helper()
	url := os.Getenv("PATHWAY_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PATHWAY_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	repo, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.DropSchema(context.Background())
		repo.Close()
	})
	return repo
}

func TestPGRepository_SeedListUpdate(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []roadmap.Node{
		{ID: 10, Label: "Root", Track: "Web", Progress: roadmap.IntPtr(40), Children: []roadmap.Node{
			{ID: 11, Label: "Child", Track: "Web"},
		}},
	}))

	steps, err := repo.ListSteps(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 40, steps[0].ProgressValue())
	require.NotNil(t, steps[1].ParentID)
	assert.Equal(t, int64(10), *steps[1].ParentID)

	require.NoError(t, repo.SetCompleted(ctx, 11, true))
	n, err := repo.CompletedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = repo.SetCompleted(ctx, 999, true)
	assert.True(t, errors.Is(err, devserver.ErrStepNotFound))
}
