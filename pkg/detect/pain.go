package detect

import (
	"math"
	"strings"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// fixed weight split between the annotator mean and the phrase components,
// changing these makes scores incomparable across runs
const (
	painAnnotatorWeight = 0.4
	painEmotionWeight   = 0.3
	painWTPWeight       = 0.3

	defaultAnnotatorMean = 5.0
)

// PainScorer computes cluster pain severity from annotator ratings plus
// emotion and payment-intent phrase matching.
type PainScorer struct {
	high    []string
	medium  []string
	low     []string
	payment []string
}

// NewPainScorer creates a scorer with the lexicon's phrase lists.
func NewPainScorer(lex config.LexiconConfig) *PainScorer {
	return &PainScorer{
		high:    lowerAll(lex.HighIntensity),
		medium:  lowerAll(lex.MediumIntensity),
		low:     lowerAll(lex.LowIntensity),
		payment: lowerAll(lex.PaymentIntent),
	}
}

// Score produces the 1-10 pain severity with its component breakdown:
// 0.4 x annotator mean + 0.3 x emotion + 0.3 x willingness-to-pay. Each
// post lands in at most one emotion tier, checked high to low. Returns nil
// for an empty cluster.
func (s *PainScorer) Score(cluster *domain.Cluster) *domain.PainScore {
	n := len(cluster.Posts)
	if n == 0 {
		return nil
	}

	var ratingSum float64
	var rated, high, medium, low, wtp int
	for i := range cluster.Posts {
		p := &cluster.Posts[i]
		if p.Annotation != nil && p.Annotation.PainSeverity > 0 {
			ratingSum += p.Annotation.PainSeverity
			rated++
		}

		text := postText(p)
		switch {
		case matchAny(text, s.high):
			high++
		case matchAny(text, s.medium):
			medium++
		case matchAny(text, s.low):
			low++
		}
		if matchAny(text, s.payment) {
			wtp++
		}
	}

	mean := defaultAnnotatorMean
	if rated > 0 {
		mean = ratingSum / float64(rated)
	}

	res := &domain.PainScore{
		AnnotatorMean: mean,
		HighRatio:     float64(high) / float64(n),
		MediumRatio:   float64(medium) / float64(n),
		LowRatio:      float64(low) / float64(n),
		WTPRatio:      float64(wtp) / float64(n),
		Rated:         rated,
	}
	res.Emotion = math.Min(res.HighRatio*10+res.MediumRatio*6+res.LowRatio*3, 10)
	res.WTP = math.Min(res.WTPRatio*20, 10)

	score := painAnnotatorWeight*mean + painEmotionWeight*res.Emotion + painWTPWeight*res.WTP
	res.Score = round2(clamp(score, 1, 10))
	return res
}

// postText is the lower-cased text phrase matching runs against.
func postText(p *domain.Post) string {
	if p.Title == "" {
		return strings.ToLower(p.Content)
	}
	return strings.ToLower(p.Title + " " + p.Content)
}

func matchAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to two decimal places
func round2(v float64) float64 { return math.Round(v*100) / 100 }
