package detect

import (
	"math"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// rubric cutoffs, the point total across all eight signals is 19
const (
	confMaxPoints      = 19
	confPeakEngagement = 1000
	confSearchVolume   = 5000
	confSeverePain     = 8.0
	confMentionVolume  = 50
	confWTPRatio       = 0.10
	confDIYHits        = 3
	confLowCompMention = 100
	confLowCompPain    = 6.0
)

// ConfidenceScorer applies the fixed eight-signal rubric to a cluster that
// already carries pain and growth results.
type ConfidenceScorer struct {
	threshold int
	diy       []string
}

// NewConfidenceScorer creates a scorer gated at threshold.
func NewConfidenceScorer(threshold int, lex config.LexiconConfig) *ConfidenceScorer {
	return &ConfidenceScorer{threshold: threshold, diy: lowerAll(lex.DIYSignals)}
}

// Score evaluates every signal and reports each individually beside the
// aggregate, the rubric is meant to be auditable. A zero searchVolume
// simply misses the search-volume signal.
//
// The low-competition signal is a stand-in heuristic for competitor data
// that is not available here; treat its contribution accordingly.
func (s *ConfidenceScorer) Score(cluster *domain.Cluster, searchVolume int) *domain.ConfidenceResult {
	pain, wtpRatio := 0.0, 0.0
	if cluster.Pain != nil {
		pain = cluster.Pain.Score
		wtpRatio = cluster.Pain.WTPRatio
	}
	growth := domain.GrowthUnknown
	if cluster.Growth != nil {
		growth = cluster.Growth.Pattern
	}

	diyHits := 0
	for i := range cluster.Posts {
		if matchAny(postText(&cluster.Posts[i]), s.diy) {
			diyHits++
		}
	}

	size := cluster.Size()
	signals := []domain.ConfidenceSignal{
		{Name: "peak_engagement", Tier: "high", Points: 3, Hit: cluster.PeakEngagement() > confPeakEngagement},
		{Name: "search_volume", Tier: "high", Points: 3, Hit: searchVolume > confSearchVolume},
		{Name: "severe_pain", Tier: "high", Points: 3, Hit: pain >= confSeverePain},
		{Name: "exploding_growth", Tier: "high", Points: 3, Hit: growth == domain.GrowthExploding},
		{Name: "mention_volume", Tier: "medium", Points: 2, Hit: size >= confMentionVolume},
		{Name: "willingness_to_pay", Tier: "medium", Points: 2, Hit: wtpRatio >= confWTPRatio},
		{Name: "diy_workarounds", Tier: "medium", Points: 2, Hit: diyHits >= confDIYHits},
		{Name: "low_competition", Tier: "low", Points: 1, Hit: size < confLowCompMention && pain >= confLowCompPain},
	}

	points := 0
	for _, sig := range signals {
		if sig.Hit {
			points += sig.Points
		}
	}
	score := int(math.Round(100 * float64(points) / confMaxPoints))

	return &domain.ConfidenceResult{
		Score:   score,
		Points:  points,
		Passed:  score >= s.threshold,
		Signals: signals,
	}
}
