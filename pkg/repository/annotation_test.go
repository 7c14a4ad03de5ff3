package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/domain"
)

func TestAnnotationRepository_SaveAnnotations(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	_, err := repos.Post.UpsertPosts(ctx, []domain.Post{
		makePost("reddit_x", base),
		makePost("reddit_y", base.Add(time.Minute)),
	})
	require.NoError(t, err)

	posts, err := repos.Post.GetUnannotated(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	t.Run("save and read back", func(t *testing.T) {
		annotations := []domain.Annotation{
			{
				PostID:           posts[0].ID,
				Summary:          "chargers break within weeks",
				PainSeverity:     8.2,
				Category:         domain.CategoryQualityImprovement,
				Keywords:         []string{"charger", "cable"},
				WillingnessToPay: true,
				Confidence:       85,
				Model:            "gpt-4o-mini",
				CreatedAt:        base.Add(time.Hour),
			},
			{
				PostID:       posts[1].ID,
				Summary:      "mild gripe about packaging",
				PainSeverity: 3.0,
				Category:     domain.CategoryNone,
				Confidence:   40,
			},
		}
		require.NoError(t, repos.Annotation.SaveAnnotations(ctx, annotations))

		stored, err := repos.Annotation.GetForPosts(ctx, []int64{posts[0].ID, posts[1].ID})
		require.NoError(t, err)
		require.Len(t, stored, 2)

		first := stored[0]
		assert.Equal(t, posts[0].ID, first.PostID)
		assert.Equal(t, "chargers break within weeks", first.Summary)
		assert.InDelta(t, 8.2, first.PainSeverity, 0.001)
		assert.Equal(t, domain.CategoryQualityImprovement, first.Category)
		assert.Equal(t, []string{"charger", "cable"}, first.Keywords)
		assert.True(t, first.WillingnessToPay)
		assert.Equal(t, 85, first.Confidence)
		assert.Equal(t, "gpt-4o-mini", first.Model)
		assert.True(t, first.CreatedAt.Equal(base.Add(time.Hour)))

		second := stored[1]
		assert.False(t, second.WillingnessToPay)
		assert.Empty(t, second.Keywords)
		assert.False(t, second.CreatedAt.IsZero(), "missing creation time defaulted")
	})

	t.Run("re-annotation replaces the record", func(t *testing.T) {
		update := domain.Annotation{
			PostID:       posts[0].ID,
			Summary:      "revised summary",
			PainSeverity: 6.0,
			Category:     domain.CategoryCheaperOption,
		}
		require.NoError(t, repos.Annotation.SaveAnnotations(ctx, []domain.Annotation{update}))

		count, err := repos.Annotation.CountAnnotations(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "upsert keyed by post id, no duplicate rows")

		stored, err := repos.Annotation.GetForPosts(ctx, []int64{posts[0].ID})
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "revised summary", stored[0].Summary)
		assert.InDelta(t, 6.0, stored[0].PainSeverity, 0.001)
	})

	t.Run("empty inputs", func(t *testing.T) {
		require.NoError(t, repos.Annotation.SaveAnnotations(ctx, nil))

		stored, err := repos.Annotation.GetForPosts(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}
