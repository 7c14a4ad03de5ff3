// Package lexical provides frequency-based keyword extraction for posts
// that arrive without platform-supplied tags.
package lexical

import (
	"regexp"
	"sort"
	"strings"
)

// Keyword is a term with its occurrence count.
type Keyword struct {
	Term  string
	Count int
}

var wordRe = regexp.MustCompile(`[a-z][a-z0-9]{2,}`)

// Extractor pulls frequent terms out of free text.
type Extractor struct {
	stopwords map[string]struct{}
}

// New creates an extractor with the given stopword list
func New(stopwords []string) *Extractor {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{stopwords: stops}
}

// Keywords returns up to limit terms ordered by descending frequency.
// Ties keep first-appearance order, so results are deterministic.
func (e *Extractor) Keywords(text string, limit int) []Keyword {
	if limit <= 0 || text == "" {
		return nil
	}

	counts := make(map[string]int)
	order := make(map[string]int)
	for i, term := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, stop := e.stopwords[term]; stop {
			continue
		}
		if _, seen := counts[term]; !seen {
			order[term] = i
		}
		counts[term]++
	}

	keywords := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		keywords = append(keywords, Keyword{Term: term, Count: count})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return order[keywords[i].Term] < order[keywords[j].Term]
	})

	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// Terms is a convenience wrapper returning just the term strings.
func (e *Extractor) Terms(text string, limit int) []string {
	keywords := e.Keywords(text, limit)
	if len(keywords) == 0 {
		return nil
	}
	terms := make([]string, len(keywords))
	for i, kw := range keywords {
		terms[i] = kw.Term
	}
	return terms
}
