// Package feed renders stored opportunities as an RSS 2.0 feed so results
// can be followed from any feed reader.
package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rydeebs/product-browser/pkg/domain"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
}

// Generator creates RSS feeds from persisted opportunities
type Generator struct {
	baseURL string
	policy  *bluemonday.Policy
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  bluemonday.StrictPolicy(),
	}
}

// GenerateRSS creates an RSS 2.0 feed from opportunities
func (g *Generator) GenerateRSS(opps []domain.Opportunity, minConfidence int) (string, error) {
	rssItems := make([]*RSSItem, 0, len(opps))
	for _, opp := range opps {
		rssItems = append(rssItems, g.convertToRSSItem(opp))
	}

	title := "Product Opportunities"
	description := "Product gaps clustered from social signals"
	if minConfidence > 0 {
		title = fmt.Sprintf("Product Opportunities (Confidence ≥ %d)", minConfidence)
		description = fmt.Sprintf("Product gaps clustered from social signals, confidence ≥ %d", minConfidence)
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   description,
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts an opportunity to an RSS item. Stored fields come
// from scraped text, so everything user-visible passes through the strict
// policy before the XML layer escapes it.
func (g *Generator) convertToRSSItem(opp domain.Opportunity) *RSSItem {
	permalink := fmt.Sprintf("%s/api/v1/opportunities/%d", g.baseURL, opp.ID)

	desc := fmt.Sprintf("Confidence: %d/100 - %s", opp.Confidence, g.plain(opp.Summary))
	desc += fmt.Sprintf("\nPain severity: %.1f/10, growth: %s, mentions: %d, engagement: %d",
		opp.PainSeverity, opp.GrowthPattern, opp.MentionCount, opp.TotalEngagement)

	categories := make([]string, 0, len(opp.Keywords))
	for _, keyword := range opp.Keywords {
		if k := g.plain(keyword); k != "" {
			categories = append(categories, k)
		}
	}
	if len(categories) > 0 {
		desc += "\nKeywords: " + strings.Join(categories, ", ")
	}

	return &RSSItem{
		Title:       fmt.Sprintf("[%d] %s", opp.Confidence, g.plain(opp.Title)),
		Link:        permalink,
		GUID:        permalink,
		Description: desc,
		PubDate:     opp.DetectedAt.Format(time.RFC1123Z),
		Categories:  categories,
	}
}

// plain strips any markup and returns decoded text, XML escaping is the
// marshaller's job
func (g *Generator) plain(s string) string {
	return html.UnescapeString(g.policy.Sanitize(s))
}
