package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// staticKeywords is a keywordExtractor stub for source tests
type staticKeywords struct {
	terms []string
}

func (s *staticKeywords) Terms(_ string, _ int) []string { return s.terms }

func TestDecorator_Decorate(t *testing.T) {
	dec := newDecorator([]string{"wish there was", "so frustrating"}, &staticKeywords{terms: []string{"stroller", "wheels"}})

	t.Run("common fields", func(t *testing.T) {
		post := domain.Post{
			UID:     "reddit_abc",
			Title:   "I Wish There Was a stroller that lasts",
			Content: "every model breaks",
		}
		dec.decorate(&post)

		assert.Equal(t, "[deleted]", post.Author, "missing author gets the placeholder")
		assert.Len(t, post.ContentHash, 32)
		assert.False(t, post.ScrapedAt.IsZero())
		assert.Equal(t, post.ScrapedAt.UTC(), post.ScrapedAt)
		assert.Equal(t, []string{"wish there was"}, post.Signals, "case-insensitive title match")
		assert.Equal(t, []string{"stroller", "wheels"}, post.Keywords, "lexical fallback fills empty keywords")
	})

	t.Run("hash keyed on uid and title", func(t *testing.T) {
		p1 := domain.Post{UID: "reddit_abc", Title: "same title"}
		p2 := domain.Post{UID: "reddit_abc", Title: "same title"}
		p3 := domain.Post{UID: "reddit_abc", Title: "different title"}
		dec.decorate(&p1)
		dec.decorate(&p2)
		dec.decorate(&p3)

		assert.Equal(t, p1.ContentHash, p2.ContentHash)
		assert.NotEqual(t, p1.ContentHash, p3.ContentHash)
	})

	t.Run("content capped", func(t *testing.T) {
		post := domain.Post{UID: "feed_x", Title: "long", Content: strings.Repeat("x", domain.MaxContentLen+500)}
		dec.decorate(&post)
		assert.Len(t, post.Content, domain.MaxContentLen)
	})

	t.Run("existing fields preserved", func(t *testing.T) {
		post := domain.Post{
			UID:      "feed_y",
			Title:    "review",
			Author:   "jane",
			Keywords: []string{"parenting"},
		}
		dec.decorate(&post)
		assert.Equal(t, "jane", post.Author)
		assert.Equal(t, []string{"parenting"}, post.Keywords, "platform keywords win over the lexical fallback")
	})

	t.Run("nil extractor leaves keywords empty", func(t *testing.T) {
		bare := newDecorator(nil, nil)
		post := domain.Post{UID: "twitter_1", Content: "short gripe"}
		bare.decorate(&post)
		assert.Empty(t, post.Keywords)
		assert.Empty(t, post.Signals)
	})
}
