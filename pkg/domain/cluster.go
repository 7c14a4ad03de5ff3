package domain

import "strings"

// Cluster is an in-memory group of topically related posts built fresh on
// each detection pass. Clusters from one pass are disjoint; posts that fit
// no cluster are dropped as noise. Only the synthesized Opportunity is
// persisted, never the cluster itself.
type Cluster struct {
	Posts []Post

	// attached incrementally by the scoring stages
	Pain       *PainScore
	Growth     *GrowthResult
	Confidence *ConfidenceResult
}

// Size returns the mention count, the number of member posts.
func (c *Cluster) Size() int { return len(c.Posts) }

// Representative returns the member with the highest engagement, nil for an
// empty cluster. Ties keep the earlier member.
func (c *Cluster) Representative() *Post {
	if len(c.Posts) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(c.Posts); i++ {
		if c.Posts[i].Engagement() > c.Posts[best].Engagement() {
			best = i
		}
	}
	return &c.Posts[best]
}

// TotalEngagement sums upvotes and comments across all members.
func (c *Cluster) TotalEngagement() int {
	total := 0
	for i := range c.Posts {
		total += c.Posts[i].Engagement()
	}
	return total
}

// PeakEngagement returns the highest single-post engagement.
func (c *Cluster) PeakEngagement() int {
	peak := 0
	for i := range c.Posts {
		if e := c.Posts[i].Engagement(); e > peak {
			peak = e
		}
	}
	return peak
}

// KeywordCounts aggregates lower-cased keyword frequencies across all
// members. Annotation keywords take precedence per post, see
// Post.EffectiveKeywords.
func (c *Cluster) KeywordCounts() map[string]int {
	counts := make(map[string]int)
	for i := range c.Posts {
		for _, kw := range c.Posts[i].EffectiveKeywords() {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			counts[kw]++
		}
	}
	return counts
}

// PainScore is the pain severity result for a cluster with its component
// breakdown.
type PainScore struct {
	Score         float64 // 1..10, rounded to two decimals
	AnnotatorMean float64 // mean of annotator ratings, 5.0 default when none
	Emotion       float64 // 0..10
	WTP           float64 // 0..10
	HighRatio     float64 // fraction of posts hitting the high-intensity tier
	MediumRatio   float64
	LowRatio      float64
	WTPRatio      float64 // fraction of posts with a payment-intent phrase
	Rated         int     // posts that carried an annotator rating
}

// GrowthPattern is the qualitative label for week-over-week post volume.
type GrowthPattern string

const (
	GrowthExploding GrowthPattern = "exploding"
	GrowthGrowing   GrowthPattern = "growing"
	GrowthRegular   GrowthPattern = "regular"
	GrowthPeaked    GrowthPattern = "peaked"
	GrowthUnknown   GrowthPattern = "unknown"
)

// WeekBucket is one week of post volume, WeeksAgo 0 is the current week.
type WeekBucket struct {
	WeeksAgo int
	Count    int
}

// GrowthResult is the growth classification with the week series that
// produced it, kept for auditability.
type GrowthResult struct {
	Pattern GrowthPattern
	AvgRate float64      // averaged week-over-week growth, percent
	Weeks   []WeekBucket // oldest first
	Rates   []float64    // per consecutive week pair, oldest first
}

// ConfidenceSignal is a single rubric signal with its outcome.
type ConfidenceSignal struct {
	Name   string
	Tier   string // "high", "medium", "low"
	Points int
	Hit    bool
}

// ConfidenceResult is the 0-100 rubric outcome with every contributing
// signal reported beside the aggregate.
type ConfidenceResult struct {
	Score   int // 0..100
	Points  int // 0..19
	Passed  bool
	Signals []ConfidenceSignal
}
