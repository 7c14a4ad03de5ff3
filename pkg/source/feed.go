package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// Feed scrapes RSS/Atom feeds. Feed items carry no engagement counters,
// they earn their place through recency and annotation instead.
type Feed struct {
	cfg    config.FeedsConfig
	ua     string
	client *http.Client
	dec    decorator
}

// NewFeed creates a feed source from the sources configuration
func NewFeed(cfg config.SourcesConfig, lex keywordExtractor) *Feed {
	return &Feed{
		cfg: cfg.Feeds,
		ua:  cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		dec: newDecorator(cfg.SignalPatterns, lex),
	}
}

// Name returns the platform name
func (f *Feed) Name() string { return "feed" }

// Fetch parses the configured feeds once. A failing feed is logged and
// skipped, the pass errors only when every feed failed.
func (f *Feed) Fetch(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	var lastErr error
	failed := 0

	for _, feedURL := range f.cfg.URLs {
		feedPosts, err := f.fetchFeed(ctx, feedURL)
		if err != nil {
			lgr.Printf("[WARN] fetch feed %s failed: %v", feedURL, err)
			lastErr = err
			failed++
			continue
		}
		lgr.Printf("[DEBUG] fetched %d items from %s", len(feedPosts), feedURL)
		posts = append(posts, feedPosts...)
	}

	if failed > 0 && failed == len(f.cfg.URLs) {
		return nil, fmt.Errorf("all %d feeds failed: %w", failed, lastErr)
	}
	return posts, nil
}

func (f *Feed) fetchFeed(ctx context.Context, feedURL string) ([]domain.Post, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var posts []domain.Post
	for _, item := range parsed.Items {
		// GUID is the native id, link and composed title fill the gaps
		nativeID := item.GUID
		if nativeID == "" {
			nativeID = item.Link
		}
		if nativeID == "" {
			nativeID = fmt.Sprintf("%s-%s", parsed.Title, item.Title)
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}

		post := domain.Post{
			UID:      "feed_" + nativeID,
			Platform: "feed",
			Title:    htmlToText(item.Title),
			Content:  htmlToText(content),
			URL:      item.Link,
		}
		if item.Author != nil {
			post.Author = item.Author.Name
		}
		if item.PublishedParsed != nil {
			post.CreatedAt = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			post.CreatedAt = item.UpdatedParsed.UTC()
		}
		for _, category := range item.Categories {
			if c := strings.ToLower(strings.TrimSpace(category)); c != "" {
				post.Keywords = append(post.Keywords, c)
			}
		}

		f.dec.decorate(&post)
		posts = append(posts, post)
	}
	return posts, nil
}

// fetch retrieves raw feed content
func (f *Feed) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.ua)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
