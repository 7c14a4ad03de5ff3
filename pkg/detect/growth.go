package detect

import (
	"time"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// growth classification thresholds over the averaged week-over-week
// percent rate, boundaries are exclusive on the high side
const (
	growthExplodingAbove = 500.0
	growthGrowingAbove   = 100.0

	growthRecentRates = 4
)

// GrowthClassifier labels a cluster's posting-volume trend from weekly
// history inside the lookback window.
type GrowthClassifier struct {
	lookbackDays int
}

// NewGrowthClassifier creates a classifier with the given lookback window.
func NewGrowthClassifier(lookbackDays int) *GrowthClassifier {
	return &GrowthClassifier{lookbackDays: lookbackDays}
}

// Classify buckets posts into integer weeks-ago bins (0 is the current
// week), fills missing weeks with zero counts, derives week-over-week
// percent growth oldest to newest and averages the most recent four rates.
// Pairs whose previous week count is zero are skipped instead of producing
// an undefined rate. Posts without usable timestamps are excluded; none at
// all means the pattern is unknown.
func (g *GrowthClassifier) Classify(posts []domain.Post, now time.Time) *domain.GrowthResult {
	maxWeeks := g.lookbackDays / 7

	counts := make(map[int]int)
	for i := range posts {
		t, ok := posts[i].BestTime()
		if !ok {
			continue
		}
		age := now.Sub(t)
		if age < 0 {
			age = 0 // clock skew, count as current week
		}
		week := int(age.Hours() / (24 * 7))
		if week > maxWeeks {
			continue
		}
		counts[week]++
	}
	if len(counts) == 0 {
		return &domain.GrowthResult{Pattern: domain.GrowthUnknown}
	}

	oldest := 0
	for week := range counts {
		if week > oldest {
			oldest = week
		}
	}

	weeks := make([]domain.WeekBucket, 0, oldest+1)
	for week := oldest; week >= 0; week-- {
		weeks = append(weeks, domain.WeekBucket{WeeksAgo: week, Count: counts[week]})
	}

	rates := make([]float64, 0, len(weeks))
	for i := 1; i < len(weeks); i++ {
		prev := weeks[i-1].Count
		if prev == 0 {
			continue
		}
		rates = append(rates, float64(weeks[i].Count-prev)/float64(prev)*100)
	}

	recent := rates
	if len(recent) > growthRecentRates {
		recent = recent[len(recent)-growthRecentRates:]
	}
	avg := 0.0
	for _, r := range recent {
		avg += r
	}
	if len(recent) > 0 {
		avg /= float64(len(recent))
	}

	res := &domain.GrowthResult{AvgRate: round2(avg), Weeks: weeks, Rates: rates}
	switch {
	case avg > growthExplodingAbove:
		res.Pattern = domain.GrowthExploding
	case avg > growthGrowingAbove:
		res.Pattern = domain.GrowthGrowing
	case avg >= 0:
		res.Pattern = domain.GrowthRegular
	default:
		res.Pattern = domain.GrowthPeaked
	}
	return res
}
