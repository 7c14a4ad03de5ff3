package domain

import (
	"strings"
	"time"
)

// MaxContentLen caps stored post content, longer text is truncated at scrape time
const MaxContentLen = 5000

// Post represents a single scraped social-media post. Posts are immutable
// once stored except for the Annotated and Processed flags set by the
// pipeline.
type Post struct {
	ID          int64
	UID         string // platform-scoped identifier, e.g. "reddit_1abcd2"
	Platform    string // "reddit", "feed", "twitter"
	Title       string
	Content     string
	Author      string
	URL         string
	Upvotes     int
	Comments    int
	CreatedAt   time.Time // zero when the platform supplied no timestamp
	ScrapedAt   time.Time
	ContentHash string   // dedupe key, md5 over UID+title
	Keywords    []string // from the platform or the lexical extractor
	Signals     []string // pain-signal phrases matched at scrape time
	Annotated   bool
	Processed   bool

	Annotation *Annotation // nil until the annotator has run
}

// Engagement returns the combined upvote and comment count.
func (p *Post) Engagement() int { return p.Upvotes + p.Comments }

// BestTime returns the creation time when known, otherwise the scrape time.
// ok is false when neither timestamp is usable.
func (p *Post) BestTime() (t time.Time, ok bool) {
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt, true
	}
	if !p.ScrapedAt.IsZero() {
		return p.ScrapedAt, true
	}
	return time.Time{}, false
}

// EffectiveKeywords returns annotation keywords when present, falling back
// to the keywords captured at scrape time.
func (p *Post) EffectiveKeywords() []string {
	if p.Annotation != nil && len(p.Annotation.Keywords) > 0 {
		return p.Annotation.Keywords
	}
	return p.Keywords
}

// Annotation represents the annotator's structured output for one post.
type Annotation struct {
	PostID           int64
	Summary          string
	PainSeverity     float64 // 1..10
	Category         Category
	Keywords         []string
	WillingnessToPay bool
	Confidence       int // 0..100, the annotator's own confidence
	Model            string
	CreatedAt        time.Time
}

// Category is the closed set of product-gap categories.
type Category string

// known categories, anything else normalizes to CategoryNone
const (
	CategoryNewInvention       Category = "new_invention"
	CategoryBetterAlternative  Category = "better_alternative"
	CategoryCheaperOption      Category = "cheaper_option"
	CategoryQualityImprovement Category = "quality_improvement"
	CategoryNone               Category = "none"
)

// ParseCategory normalizes a free-form category string to the closed enum.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryNewInvention:
		return CategoryNewInvention
	case CategoryBetterAlternative:
		return CategoryBetterAlternative
	case CategoryCheaperOption:
		return CategoryCheaperOption
	case CategoryQualityImprovement:
		return CategoryQualityImprovement
	default:
		return CategoryNone
	}
}

// Display returns the category title-cased with underscores replaced by
// spaces, e.g. "better_alternative" -> "Better Alternative".
func (c Category) Display() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
