package detect

import (
	"sort"
	"strings"
	"time"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// output bounds for synthesized opportunities
const (
	maxTitleLen   = 100
	maxSummaryLen = 1000
	maxKeywords   = 20
	maxEvidence   = 5

	evidenceBonus  = 0.25
	evidenceStep   = 0.05
	summaryOverlap = 0.5
	minSentenceLen = 20
)

// Synthesizer turns a fully scored cluster into a persistable opportunity.
type Synthesizer struct {
	generic map[string]struct{}
}

// NewSynthesizer creates a synthesizer with the lexicon's generic-term
// stoplist for titles.
func NewSynthesizer(lex config.LexiconConfig) *Synthesizer {
	generic := make(map[string]struct{}, len(lex.GenericTerms))
	for _, term := range lex.GenericTerms {
		generic[strings.ToLower(term)] = struct{}{}
	}
	return &Synthesizer{generic: generic}
}

// Synthesize builds the opportunity record for one cluster.
func (s *Synthesizer) Synthesize(cluster *domain.Cluster, runID string, now time.Time) domain.Opportunity {
	counts := cluster.KeywordCounts()
	ranked := s.rankTerms(counts)
	category := topCategory(cluster)

	opp := domain.Opportunity{
		RunID:           runID,
		Title:           s.title(cluster, ranked, counts, category),
		Summary:         s.summary(cluster),
		Category:        category,
		Keywords:        capSlice(ranked, maxKeywords),
		MentionCount:    cluster.Size(),
		TotalEngagement: cluster.TotalEngagement(),
		DetectedAt:      now,
		Status:          domain.StatusActive,
		Evidence:        s.evidence(cluster),
	}
	if cluster.Pain != nil {
		opp.PainSeverity = cluster.Pain.Score
	}
	if cluster.Growth != nil {
		opp.GrowthPattern = cluster.Growth.Pattern
		opp.GrowthRate = cluster.Growth.AvgRate
	}
	if cluster.Confidence != nil {
		opp.Confidence = cluster.Confidence.Score
	}
	return opp
}

// rankTerms orders cluster keywords by descending frequency, dropping short
// and generic terms. Ties sort lexicographically for determinism.
func (s *Synthesizer) rankTerms(counts map[string]int) []string {
	ranked := make([]string, 0, len(counts))
	for term := range counts {
		if len(term) <= 2 {
			continue
		}
		if _, skip := s.generic[term]; skip {
			continue
		}
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

// title formats the top keywords into a headline. Of the top three, only
// keywords comparably frequent to the leader (more than half its count)
// survive, so a single dominant topic yields the one-keyword form.
func (s *Synthesizer) title(cluster *domain.Cluster, ranked []string, counts map[string]int, category domain.Category) string {
	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	if len(top) == 0 {
		// nothing survived filtering, fall back to the first post
		first := &cluster.Posts[0]
		fallback := first.Content
		if first.Annotation != nil && first.Annotation.Summary != "" {
			fallback = first.Annotation.Summary
		}
		return truncate(strings.TrimSpace(fallback), maxTitleLen)
	}

	lead := counts[top[0]]
	kept := make([]string, 0, len(top))
	for _, term := range top {
		if float64(counts[term]) > float64(lead)/2 {
			kept = append(kept, titleWord(term))
		}
	}

	var title string
	switch len(kept) {
	case 1:
		title = kept[0] + " Solution Needed"
	case 2:
		title = kept[0] + " & " + kept[1] + " Problem"
	default:
		title = kept[0] + ", " + kept[1] + " & " + kept[2]
	}
	if category != domain.CategoryNone && category != "" {
		title += " (" + category.Display() + ")"
	}
	return truncate(title, maxTitleLen)
}

// summary merges deduplicated annotation summaries: the longest is primary,
// then up to three further points that do not mostly repeat it, each cut to
// its first substantial sentence.
func (s *Synthesizer) summary(cluster *domain.Cluster) string {
	seen := make(map[string]struct{})
	var summaries []string
	for i := range cluster.Posts {
		a := cluster.Posts[i].Annotation
		if a == nil {
			continue
		}
		text := strings.TrimSpace(a.Summary)
		if text == "" {
			continue
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		summaries = append(summaries, text)
	}

	if len(summaries) == 0 {
		rep := cluster.Representative()
		if rep == nil {
			return ""
		}
		return truncate(strings.TrimSpace(rep.Content), maxSummaryLen)
	}

	primary := summaries[0]
	for _, text := range summaries[1:] {
		if len(text) > len(primary) {
			primary = text
		}
	}

	parts := []string{primary}
	added := 0
	for _, text := range summaries {
		if added >= 3 {
			break
		}
		if text == primary {
			continue
		}
		if wordOverlap(primary, text) > summaryOverlap {
			continue
		}
		parts = append(parts, firstSentence(text))
		added++
	}
	return truncate(strings.Join(parts, " "), maxSummaryLen)
}

// evidence links the top posts ranked by upvotes + 2 x comments. Weight
// combines cluster pain with a rank bonus decaying from 0.25.
func (s *Synthesizer) evidence(cluster *domain.Cluster) []domain.Evidence {
	ranked := make([]domain.Post, len(cluster.Posts))
	copy(ranked, cluster.Posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Upvotes+2*ranked[i].Comments > ranked[j].Upvotes+2*ranked[j].Comments
	})
	if len(ranked) > maxEvidence {
		ranked = ranked[:maxEvidence]
	}

	pain := 0.0
	if cluster.Pain != nil {
		pain = cluster.Pain.Score
	}

	evidence := make([]domain.Evidence, 0, len(ranked))
	for i := range ranked {
		bonus := evidenceBonus - evidenceStep*float64(i)
		if bonus < 0 {
			bonus = 0
		}
		weight := pain/10 + bonus
		if weight > 1 {
			weight = 1
		}
		evidence = append(evidence, domain.Evidence{
			PostID:     ranked[i].ID,
			SignalType: "pain_point",
			Weight:     weight,
			Rank:       i + 1,
			PostTitle:  ranked[i].Title,
			PostURL:    ranked[i].URL,
			Platform:   ranked[i].Platform,
		})
	}
	return evidence
}

// topCategory picks the most common non-none annotation category. Ties go
// to the lexicographically smaller name for determinism.
func topCategory(cluster *domain.Cluster) domain.Category {
	counts := make(map[domain.Category]int)
	for i := range cluster.Posts {
		a := cluster.Posts[i].Annotation
		if a == nil || a.Category == "" || a.Category == domain.CategoryNone {
			continue
		}
		counts[a.Category]++
	}

	best := domain.CategoryNone
	bestCount := 0
	for cat, count := range counts {
		if count > bestCount || (count == bestCount && bestCount > 0 && cat < best) {
			best = cat
			bestCount = count
		}
	}
	return best
}

// wordOverlap is the share of words common to both texts relative to the
// one with fewer distinct words.
func wordOverlap(a, b string) float64 {
	wa, wb := wordSet(a), wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	shared := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			shared++
		}
	}
	smaller := len(wa)
	if len(wb) < smaller {
		smaller = len(wb)
	}
	return float64(shared) / float64(smaller)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = struct{}{}
	}
	return set
}

// firstSentence returns the first sentence longer than minSentenceLen
// characters, or the whole trimmed text when none qualifies.
func firstSentence(text string) string {
	for _, raw := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if s := strings.TrimSpace(raw); len(s) > minSentenceLen {
			return s
		}
	}
	return strings.TrimSpace(text)
}

// titleWord capitalizes the first letter; keywords are single lower-case
// tokens by construction.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
