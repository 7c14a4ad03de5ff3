package detect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/domain"
)

func TestConfidenceScorer_AllSignals(t *testing.T) {
	scorer := NewConfidenceScorer(60, testLexicon())

	// 75 posts, three of them with DIY phrasing, one carrying the peak
	// engagement
	cluster := &domain.Cluster{}
	for i := 0; i < 75; i++ {
		p := domain.Post{Content: fmt.Sprintf("ordinary complaint %d", i)}
		if i < 3 {
			p.Content = "gave up and built my own version"
		}
		if i == 10 {
			p.Upvotes = 1000
			p.Comments = 500
		}
		cluster.Posts = append(cluster.Posts, p)
	}
	cluster.Pain = &domain.PainScore{Score: 9.2, WTPRatio: 0.10}
	cluster.Growth = &domain.GrowthResult{Pattern: domain.GrowthExploding}

	res := scorer.Score(cluster, 8000)
	require.NotNil(t, res)
	assert.Equal(t, 19, res.Points)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Passed)

	require.Len(t, res.Signals, 8)
	for _, sig := range res.Signals {
		assert.True(t, sig.Hit, "signal %s should fire", sig.Name)
	}
}

func TestConfidenceScorer_NoSignals(t *testing.T) {
	scorer := NewConfidenceScorer(60, testLexicon())

	cluster := &domain.Cluster{Posts: []domain.Post{
		{Content: "mild remark", Upvotes: 3},
		{Content: "another mild remark", Comments: 1},
	}}

	res := scorer.Score(cluster, 0)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Points)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.Passed)
	for _, sig := range res.Signals {
		assert.False(t, sig.Hit, "signal %s should not fire", sig.Name)
	}
}

func TestConfidenceScorer_Boundaries(t *testing.T) {
	scorer := NewConfidenceScorer(60, testLexicon())

	t.Run("engagement at exactly 1000 misses", func(t *testing.T) {
		cluster := &domain.Cluster{Posts: []domain.Post{{Content: "x", Upvotes: 900, Comments: 100}}}
		res := scorer.Score(cluster, 0)
		assert.False(t, signalHit(res, "peak_engagement"))
	})

	t.Run("mention count at exactly 50 fires", func(t *testing.T) {
		cluster := &domain.Cluster{}
		for i := 0; i < 50; i++ {
			cluster.Posts = append(cluster.Posts, domain.Post{Content: "c"})
		}
		res := scorer.Score(cluster, 0)
		assert.True(t, signalHit(res, "mention_volume"))
	})

	t.Run("low competition needs both conditions", func(t *testing.T) {
		cluster := &domain.Cluster{Posts: []domain.Post{{Content: "c"}}}
		cluster.Pain = &domain.PainScore{Score: 6.0}
		res := scorer.Score(cluster, 0)
		assert.True(t, signalHit(res, "low_competition"))

		cluster.Pain = &domain.PainScore{Score: 5.9}
		res = scorer.Score(cluster, 0)
		assert.False(t, signalHit(res, "low_competition"))
	})

	t.Run("missing pain and growth are neutral", func(t *testing.T) {
		cluster := &domain.Cluster{Posts: []domain.Post{{Content: "c"}}}
		res := scorer.Score(cluster, 0)
		assert.False(t, signalHit(res, "severe_pain"))
		assert.False(t, signalHit(res, "exploding_growth"))
		assert.False(t, signalHit(res, "low_competition"))
	})
}

func TestConfidenceScorer_Threshold(t *testing.T) {
	// 2+2+1 medium/low points: 5/19 -> 26
	cluster := &domain.Cluster{}
	for i := 0; i < 60; i++ {
		p := domain.Post{Content: "post"}
		if i < 3 {
			p.Content = "ended up with a workaround"
		}
		cluster.Posts = append(cluster.Posts, p)
	}
	cluster.Pain = &domain.PainScore{Score: 7.0}

	strict := NewConfidenceScorer(60, testLexicon())
	res := strict.Score(cluster, 0)
	require.NotNil(t, res)
	assert.Equal(t, 26, res.Score)
	assert.False(t, res.Passed)

	lenient := NewConfidenceScorer(20, testLexicon())
	res = lenient.Score(cluster, 0)
	assert.True(t, res.Passed)
}

func signalHit(res *domain.ConfidenceResult, name string) bool {
	for _, sig := range res.Signals {
		if sig.Name == name {
			return sig.Hit
		}
	}
	return false
}
