package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/domain"
)

func seedPosts(t *testing.T, repos *Repositories, n int) []domain.Post {
	t.Helper()
	base := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	posts := make([]domain.Post, n)
	for i := range posts {
		posts[i] = makePost(string(rune('a'+i))+"_seed", base.Add(time.Duration(i)*time.Minute))
	}
	_, err := repos.Post.UpsertPosts(context.Background(), posts)
	require.NoError(t, err)

	stored, err := repos.Post.GetUnprocessed(context.Background(), n, 0)
	require.NoError(t, err)
	require.Len(t, stored, n)
	return stored
}

func TestOpportunityRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	posts := seedPosts(t, repos, 3)
	detected := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	opp := &domain.Opportunity{
		RunID:           "run-7",
		Title:           "Charger & Cable Problem (Quality Improvement)",
		Summary:         "chargers break, users want sturdier cables",
		Category:        domain.CategoryQualityImprovement,
		Keywords:        []string{"charger", "cable", "fray"},
		PainSeverity:    8.2,
		GrowthPattern:   domain.GrowthGrowing,
		GrowthRate:      150,
		Confidence:      74,
		MentionCount:    3,
		TotalEngagement: 36,
		DetectedAt:      detected,
		Status:          domain.StatusActive,
		Evidence: []domain.Evidence{
			{PostID: posts[1].ID, SignalType: "pain_point", Weight: 1.0, Rank: 1},
			{PostID: posts[0].ID, SignalType: "pain_point", Weight: 0.95, Rank: 2},
		},
	}

	require.NoError(t, repos.Opportunity.CreateOpportunity(ctx, opp))
	require.NotZero(t, opp.ID)
	assert.Equal(t, opp.ID, opp.Evidence[0].OpportunityID, "evidence linked to the new id")

	got, err := repos.Opportunity.GetOpportunity(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Charger & Cable Problem (Quality Improvement)", got.Title)
	assert.Equal(t, domain.CategoryQualityImprovement, got.Category)
	assert.Equal(t, []string{"charger", "cable", "fray"}, got.Keywords)
	assert.InDelta(t, 8.2, got.PainSeverity, 0.001)
	assert.Equal(t, domain.GrowthGrowing, got.GrowthPattern)
	assert.InDelta(t, 150, got.GrowthRate, 0.001)
	assert.Equal(t, 74, got.Confidence)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.True(t, got.DetectedAt.Equal(detected))

	require.Len(t, got.Evidence, 2)
	assert.Equal(t, 1, got.Evidence[0].Rank, "evidence ordered by rank")
	assert.Equal(t, posts[1].ID, got.Evidence[0].PostID)
	assert.Equal(t, posts[1].Title, got.Evidence[0].PostTitle, "post fields denormalized")
	assert.Equal(t, posts[1].URL, got.Evidence[0].PostURL)
	assert.Equal(t, "reddit", got.Evidence[0].Platform)

	t.Run("missing id errors", func(t *testing.T) {
		_, err := repos.Opportunity.GetOpportunity(ctx, 9999)
		require.Error(t, err)
	})
}

func TestOpportunityRepository_GetOpportunities(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := []struct {
		title      string
		confidence int
		status     domain.OpportunityStatus
		detected   time.Time
	}{
		{"Old Low", 40, domain.StatusActive, base.Add(-72 * time.Hour)},
		{"Mid Active", 65, domain.StatusActive, base.Add(-48 * time.Hour)},
		{"High Archived", 90, domain.StatusArchived, base.Add(-24 * time.Hour)},
		{"High Active", 85, domain.StatusActive, base},
	}
	for _, s := range seed {
		opp := &domain.Opportunity{
			Title:      s.title,
			Confidence: s.confidence,
			Status:     s.status,
			DetectedAt: s.detected,
			Category:   domain.CategoryNone,
		}
		require.NoError(t, repos.Opportunity.CreateOpportunity(ctx, opp))
	}

	t.Run("ranked by confidence, no filter", func(t *testing.T) {
		opps, err := repos.Opportunity.GetOpportunities(ctx, domain.OpportunityFilter{})
		require.NoError(t, err)
		require.Len(t, opps, 4)
		assert.Equal(t, "High Archived", opps[0].Title)
		assert.Equal(t, "High Active", opps[1].Title)
		assert.Equal(t, "Old Low", opps[3].Title)
		assert.Empty(t, opps[0].Evidence, "list reads skip evidence")
	})

	t.Run("min confidence", func(t *testing.T) {
		opps, err := repos.Opportunity.GetOpportunities(ctx, domain.OpportunityFilter{MinConfidence: 60})
		require.NoError(t, err)
		assert.Len(t, opps, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		opps, err := repos.Opportunity.GetOpportunities(ctx, domain.OpportunityFilter{
			MinConfidence: 60,
			Status:        domain.StatusActive,
		})
		require.NoError(t, err)
		require.Len(t, opps, 2)
		assert.Equal(t, "High Active", opps[0].Title)
		assert.Equal(t, "Mid Active", opps[1].Title)
	})

	t.Run("limit", func(t *testing.T) {
		opps, err := repos.Opportunity.GetOpportunities(ctx, domain.OpportunityFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, opps, 1)
		assert.Equal(t, "High Archived", opps[0].Title)
	})

	count, err := repos.Opportunity.CountOpportunities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
