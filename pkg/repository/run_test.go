package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/domain"
)

func TestRunRepository_Runs(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no runs yet", func(t *testing.T) {
		latest, err := repos.Run.GetLatestRun(ctx)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("start and finish", func(t *testing.T) {
		run := &domain.DetectionRun{ID: "run-1", StartedAt: base, Status: "running"}
		require.NoError(t, repos.Run.StartRun(ctx, run))

		latest, err := repos.Run.GetLatestRun(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "run-1", latest.ID)
		assert.Equal(t, "running", latest.Status)
		assert.Nil(t, latest.FinishedAt)

		finished := base.Add(time.Minute)
		run.FinishedAt = &finished
		run.PostsScanned = 120
		run.ClustersFound = 4
		run.Created = 2
		run.Status = "completed"
		require.NoError(t, repos.Run.FinishRun(ctx, run))

		latest, err = repos.Run.GetLatestRun(ctx)
		require.NoError(t, err)
		assert.Equal(t, "completed", latest.Status)
		assert.Equal(t, 120, latest.PostsScanned)
		assert.Equal(t, 4, latest.ClustersFound)
		assert.Equal(t, 2, latest.Created)
		require.NotNil(t, latest.FinishedAt)
		assert.True(t, latest.FinishedAt.Equal(finished))
	})

	t.Run("latest wins", func(t *testing.T) {
		second := &domain.DetectionRun{ID: "run-2", StartedAt: base.Add(time.Hour), Status: "running"}
		require.NoError(t, repos.Run.StartRun(ctx, second))

		latest, err := repos.Run.GetLatestRun(ctx)
		require.NoError(t, err)
		assert.Equal(t, "run-2", latest.ID)
	})

	t.Run("failed run keeps its error", func(t *testing.T) {
		run := &domain.DetectionRun{ID: "run-3", StartedAt: base.Add(2 * time.Hour), Status: "running"}
		require.NoError(t, repos.Run.StartRun(ctx, run))

		finished := base.Add(2*time.Hour + time.Minute)
		run.FinishedAt = &finished
		run.Status = "failed"
		run.Error = "get unprocessed posts: disk I/O error"
		require.NoError(t, repos.Run.FinishRun(ctx, run))

		latest, err := repos.Run.GetLatestRun(ctx)
		require.NoError(t, err)
		assert.Equal(t, "failed", latest.Status)
		assert.Contains(t, latest.Error, "disk I/O error")
	})
}

func TestRunRepository_SourceState(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		states, err := repos.Run.GetSourceStates(ctx)
		require.NoError(t, err)
		assert.Empty(t, states)
	})

	t.Run("success and error rows", func(t *testing.T) {
		require.NoError(t, repos.Run.SaveSourceSuccess(ctx, "reddit", 42))
		require.NoError(t, repos.Run.SaveSourceError(ctx, "twitter", "rate limited"))

		states, err := repos.Run.GetSourceStates(ctx)
		require.NoError(t, err)
		require.Len(t, states, 2)

		assert.Equal(t, "reddit", states[0].Name, "ordered by name")
		assert.Equal(t, 42, states[0].LastFetch)
		require.NotNil(t, states[0].LastRunAt)
		assert.WithinDuration(t, time.Now(), *states[0].LastRunAt, time.Minute)
		assert.Zero(t, states[0].ErrorCount)

		assert.Equal(t, "twitter", states[1].Name)
		assert.Equal(t, 1, states[1].ErrorCount)
		assert.Equal(t, "rate limited", states[1].LastError)
	})

	t.Run("errors accumulate", func(t *testing.T) {
		require.NoError(t, repos.Run.SaveSourceError(ctx, "twitter", "rate limited again"))

		states, err := repos.Run.GetSourceStates(ctx)
		require.NoError(t, err)
		require.Len(t, states, 2)
		assert.Equal(t, 2, states[1].ErrorCount)
		assert.Equal(t, "rate limited again", states[1].LastError)
	})

	t.Run("success resets the counter", func(t *testing.T) {
		require.NoError(t, repos.Run.SaveSourceSuccess(ctx, "twitter", 7))

		states, err := repos.Run.GetSourceStates(ctx)
		require.NoError(t, err)
		require.Len(t, states, 2)
		assert.Zero(t, states[1].ErrorCount)
		assert.Empty(t, states[1].LastError)
		assert.Equal(t, 7, states[1].LastFetch)
	})
}
