package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// setupTestDB creates a fresh in-memory database with all repositories
func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	cleanup = func() {
		require.NoError(t, repos.Close())
	}
	return repos, cleanup
}

// makePost builds a stored-shape post with a unique content hash
func makePost(uid string, created time.Time) domain.Post {
	return domain.Post{
		UID:         uid,
		Platform:    "reddit",
		Title:       "title for " + uid,
		Content:     "content for " + uid,
		Author:      "someone",
		URL:         "https://reddit.com/" + uid,
		Upvotes:     10,
		Comments:    2,
		CreatedAt:   created,
		ScrapedAt:   created.Add(time.Hour),
		ContentHash: "hash-" + uid,
		Keywords:    []string{"widget"},
	}
}

func TestRepositories_Integration(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repos.Ping(ctx))

	base := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	// scrape: store a small batch, duplicates skipped
	batch := []domain.Post{makePost("reddit_a1", base), makePost("reddit_b2", base.Add(time.Hour))}
	inserted, err := repos.Post.UpsertPosts(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repos.Post.UpsertPosts(ctx, batch)
	require.NoError(t, err)
	assert.Zero(t, inserted, "same content hashes skipped on re-scrape")

	// annotate: fetch pending posts, save annotator output, flag them
	pending, err := repos.Post.GetUnannotated(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	ann := domain.Annotation{
		PostID:           pending[0].ID,
		Summary:          "users cannot find a decent widget",
		PainSeverity:     7.5,
		Category:         domain.CategoryBetterAlternative,
		Keywords:         []string{"widget", "replacement"},
		WillingnessToPay: true,
		Confidence:       90,
		Model:            "gpt-4o-mini",
	}
	require.NoError(t, repos.Annotation.SaveAnnotations(ctx, []domain.Annotation{ann}))
	require.NoError(t, repos.Post.MarkAnnotated(ctx, []int64{pending[0].ID}))

	// detect: unprocessed read carries the stored annotation
	unprocessed, err := repos.Post.GetUnprocessed(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, unprocessed, 2)
	require.NotNil(t, unprocessed[0].Annotation, "annotation joined onto oldest post")
	assert.Equal(t, "users cannot find a decent widget", unprocessed[0].Annotation.Summary)
	assert.Equal(t, []string{"widget", "replacement"}, unprocessed[0].Annotation.Keywords)
	assert.Nil(t, unprocessed[1].Annotation)

	// persist an opportunity with evidence, then audit the run
	run := &domain.DetectionRun{ID: "run-1", StartedAt: base.Add(2 * time.Hour), Status: "running"}
	require.NoError(t, repos.Run.StartRun(ctx, run))

	opp := &domain.Opportunity{
		RunID:        run.ID,
		Title:        "Widget Solution Needed",
		Summary:      "users cannot find a decent widget",
		Category:     domain.CategoryBetterAlternative,
		Keywords:     []string{"widget"},
		PainSeverity: 7.5,
		Confidence:   68,
		MentionCount: 2,
		DetectedAt:   base.Add(2 * time.Hour),
		Status:       domain.StatusActive,
		Evidence: []domain.Evidence{
			{PostID: unprocessed[0].ID, SignalType: "pain_point", Weight: 1.0, Rank: 1},
		},
	}
	require.NoError(t, repos.Opportunity.CreateOpportunity(ctx, opp))
	require.NotZero(t, opp.ID)

	require.NoError(t, repos.Post.MarkProcessed(ctx, []int64{unprocessed[0].ID, unprocessed[1].ID}))

	finished := base.Add(3 * time.Hour)
	run.FinishedAt = &finished
	run.PostsScanned = 2
	run.ClustersFound = 1
	run.Created = 1
	run.Status = "completed"
	require.NoError(t, repos.Run.FinishRun(ctx, run))

	// verify the end state
	remaining, err := repos.Post.CountUnprocessed(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	detail, err := repos.Opportunity.GetOpportunity(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget Solution Needed", detail.Title)
	require.Len(t, detail.Evidence, 1)
	assert.Equal(t, "title for reddit_a1", detail.Evidence[0].PostTitle)

	latest, err := repos.Run.GetLatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "completed", latest.Status)
	assert.Equal(t, 1, latest.Created)
}

func TestRepositories_FileDSN(t *testing.T) {
	cfg := Config{DSN: fmt.Sprintf("file:%s/state.db?mode=rwc", t.TempDir()), MaxOpenConns: 1}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Ping(context.Background()))
	count, err := repos.Post.CountPosts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
