package source

import "strings"

// SignalMatcher records which pain-signal phrases appear in post text.
// Matched phrases are stored on the post at scrape time for source quality
// stats, the scoring engine keeps its own lexicon.
type SignalMatcher struct {
	patterns []string
}

// NewSignalMatcher creates a matcher over the given phrase list
func NewSignalMatcher(patterns []string) *SignalMatcher {
	lowered := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if p := strings.ToLower(strings.TrimSpace(pattern)); p != "" {
			lowered = append(lowered, p)
		}
	}
	return &SignalMatcher{patterns: lowered}
}

// Match returns the phrases contained in text, in pattern-list order.
// Matching is case-insensitive substring containment.
func (m *SignalMatcher) Match(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, pattern := range m.patterns {
		if strings.Contains(lower, pattern) {
			matched = append(matched, pattern)
		}
	}
	return matched
}
