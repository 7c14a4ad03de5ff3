package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

const redditBaseURL = "https://www.reddit.com"

// Reddit scrapes subreddit listings through the public JSON endpoints,
// no API credentials needed.
type Reddit struct {
	cfg     config.RedditConfig
	ua      string
	client  *http.Client
	dec     decorator
	baseURL string
}

// NewReddit creates a reddit source from the sources configuration
func NewReddit(cfg config.SourcesConfig, lex keywordExtractor) *Reddit {
	return &Reddit{
		cfg:     cfg.Reddit,
		ua:      cfg.UserAgent,
		client:  &http.Client{Timeout: cfg.Timeout},
		dec:     newDecorator(cfg.SignalPatterns, lex),
		baseURL: redditBaseURL,
	}
}

// Name returns the platform name
func (r *Reddit) Name() string { return "reddit" }

// Fetch scrapes the configured subreddits once. A failing subreddit is
// logged and skipped, the pass errors only when every subreddit failed.
func (r *Reddit) Fetch(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	var lastErr error
	failed := 0

	for _, sub := range r.cfg.Subreddits {
		subPosts, err := r.fetchSubreddit(ctx, sub)
		if err != nil {
			lgr.Printf("[WARN] fetch r/%s failed: %v", sub, err)
			lastErr = err
			failed++
			continue
		}
		lgr.Printf("[DEBUG] fetched %d posts from r/%s", len(subPosts), sub)
		posts = append(posts, subPosts...)
	}

	if failed > 0 && failed == len(r.cfg.Subreddits) {
		return nil, fmt.Errorf("all %d subreddits failed: %w", failed, lastErr)
	}
	return posts, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Kind string     `json:"kind"`
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Permalink   string  `json:"permalink"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

func (r *Reddit) fetchSubreddit(ctx context.Context, sub string) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(r.cfg.Limit))
	if r.cfg.TimeRange != "" {
		params.Set("t", r.cfg.TimeRange)
	}
	reqURL := fmt.Sprintf("%s/r/%s/%s.json?%s", r.baseURL, sub, r.cfg.Listing, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.ua)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	defer resp.Body.Close()

	// rate limits resolve by the next scheduled pass, no point waiting here
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	var posts []domain.Post
	for _, child := range listing.Data.Children {
		if child.Kind != "t3" { // comments and ads show up in listings too
			continue
		}
		data := child.Data
		if data.ID == "" || data.Title == "" {
			continue
		}
		if data.Score < r.cfg.MinUpvotes {
			continue
		}

		content := data.Title
		if data.Selftext != "" {
			content += "\n\n" + data.Selftext
		}

		post := domain.Post{
			UID:      "reddit_" + data.ID,
			Platform: "reddit",
			Title:    data.Title,
			Content:  content,
			Author:   data.Author,
			URL:      "https://reddit.com" + data.Permalink,
			Upvotes:  data.Score,
			Comments: data.NumComments,
		}
		if data.CreatedUTC > 0 {
			post.CreatedAt = time.Unix(int64(data.CreatedUTC), 0).UTC()
		}
		r.dec.decorate(&post)
		posts = append(posts, post)
	}
	return posts, nil
}
