package detect

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// featureContentLen bounds how much post content feeds the vectorizer,
// long posts are dominated by their opening anyway
const featureContentLen = 500

// featureText builds the clustering input for one post: truncated content,
// keywords and the annotation summary when present.
func featureText(p *domain.Post) string {
	var sb strings.Builder
	sb.WriteString(truncate(p.Content, featureContentLen))
	for _, kw := range p.EffectiveKeywords() {
		sb.WriteByte(' ')
		sb.WriteString(kw)
	}
	if p.Annotation != nil && p.Annotation.Summary != "" {
		sb.WriteByte(' ')
		sb.WriteString(p.Annotation.Summary)
	}
	return sb.String()
}

// tokenize lower-cases text, splits on non-alphanumeric runs and drops
// stopwords and single-character tokens.
func tokenize(text string, stopwords map[string]struct{}) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// terms expands tokens into the feature vocabulary: unigrams plus
// adjacent-pair bigrams.
func terms(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// vector is a sparse TF-IDF document vector keyed by vocabulary index,
// L2-normalized so cosine distance is 1 minus the dot product.
type vector map[int]float64

// cosineDistance between two normalized vectors, clipped at zero to absorb
// floating point drift.
func cosineDistance(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for idx, w := range a {
		dot += w * b[idx]
	}
	if d := 1 - dot; d > 0 {
		return d
	}
	return 0
}

// vectorize builds smoothed TF-IDF vectors over the token documents:
// idf = ln((1+N)/(1+df)) + 1, term weight = tf * idf, then L2 normalization.
// Documents with no tokens get nil vectors.
func vectorize(docs [][]string) []vector {
	n := len(docs)
	index := make(map[string]int) // term -> vocabulary column
	df := make([]int, 0)
	perDoc := make([]map[int]int, n)

	for d, tokens := range docs {
		counts := make(map[int]int)
		for _, term := range terms(tokens) {
			idx, ok := index[term]
			if !ok {
				idx = len(index)
				index[term] = idx
				df = append(df, 0)
			}
			counts[idx]++
		}
		for idx := range counts {
			df[idx]++
		}
		perDoc[d] = counts
	}

	vectors := make([]vector, n)
	for d, counts := range perDoc {
		if len(counts) == 0 {
			continue
		}
		vec := make(vector, len(counts))
		norm := 0.0
		for idx, tf := range counts {
			w := float64(tf) * (math.Log(float64(1+n)/float64(1+df[idx])) + 1)
			vec[idx] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
		vectors[d] = vec
	}
	return vectors
}

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
