// Package source implements the content sources feeding the post store:
// Reddit listings, RSS/Atom feeds and Twitter recent search. Each source
// produces domain posts in a single bounded pass, the scheduler owns
// periodicity and fan-out.
package source

import (
	"crypto/md5" //nolint:gosec // dedupe key, not a security hash
	"fmt"
	"time"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// keywords recorded per post when the platform supplies none
const maxKeywords = 10

// decorator stamps the fields shared by every platform: content cap, dedupe
// hash, scrape time, author placeholder, matched signal phrases and fallback
// keywords. Sources fill the platform-specific fields first.
type decorator struct {
	signals *SignalMatcher
	lex     keywordExtractor
	now     func() time.Time
}

// keywordExtractor supplies fallback keywords for posts without tags
type keywordExtractor interface {
	Terms(text string, limit int) []string
}

func newDecorator(patterns []string, lex keywordExtractor) decorator {
	return decorator{signals: NewSignalMatcher(patterns), lex: lex, now: time.Now}
}

func (d decorator) decorate(p *domain.Post) {
	if len(p.Content) > domain.MaxContentLen {
		p.Content = p.Content[:domain.MaxContentLen]
	}
	if p.Author == "" {
		p.Author = "[deleted]"
	}
	p.ContentHash = fmt.Sprintf("%x", md5.Sum([]byte(p.UID+p.Title))) //nolint:gosec // dedupe key, not a security hash
	p.ScrapedAt = d.now().UTC()

	text := p.Title + "\n" + p.Content
	p.Signals = d.signals.Match(text)
	if len(p.Keywords) == 0 && d.lex != nil {
		p.Keywords = d.lex.Terms(text, maxKeywords)
	}
}
