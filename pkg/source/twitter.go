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

const twitterBaseURL = "https://api.twitter.com"

// Twitter runs configured queries against the v2 recent-search endpoint.
// Likes count as upvotes and replies as comments so tweets rank on the
// same engagement scale as reddit posts.
type Twitter struct {
	cfg     config.TwitterConfig
	ua      string
	client  *http.Client
	dec     decorator
	baseURL string
}

// NewTwitter creates a twitter source from the sources configuration
func NewTwitter(cfg config.SourcesConfig, lex keywordExtractor) *Twitter {
	return &Twitter{
		cfg:     cfg.Twitter,
		ua:      cfg.UserAgent,
		client:  &http.Client{Timeout: cfg.Timeout},
		dec:     newDecorator(cfg.SignalPatterns, lex),
		baseURL: twitterBaseURL,
	}
}

// Name returns the platform name
func (t *Twitter) Name() string { return "twitter" }

// Fetch runs the configured queries once. Tweets matching several queries
// are kept once, a failing query is logged and skipped, the pass errors
// only when every query failed.
func (t *Twitter) Fetch(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	var lastErr error
	failed := 0
	seen := make(map[string]bool)

	for _, query := range t.cfg.Queries {
		queryPosts, err := t.search(ctx, query)
		if err != nil {
			lgr.Printf("[WARN] twitter search %q failed: %v", query, err)
			lastErr = err
			failed++
			continue
		}
		added := 0
		for _, post := range queryPosts {
			if seen[post.UID] {
				continue
			}
			seen[post.UID] = true
			posts = append(posts, post)
			added++
		}
		lgr.Printf("[DEBUG] twitter search %q returned %d tweets, %d new", query, len(queryPosts), added)
	}

	if failed > 0 && failed == len(t.cfg.Queries) {
		return nil, fmt.Errorf("all %d twitter queries failed: %w", failed, lastErr)
	}
	return posts, nil
}

type twitterSearchResponse struct {
	Data []struct {
		ID            string    `json:"id"`
		Text          string    `json:"text"`
		AuthorID      string    `json:"author_id"`
		CreatedAt     time.Time `json:"created_at"`
		PublicMetrics struct {
			LikeCount  int `json:"like_count"`
			ReplyCount int `json:"reply_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

func (t *Twitter) search(ctx context.Context, query string) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(t.cfg.MaxResults))
	params.Set("tweet.fields", "created_at,public_metrics,author_id")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "username")
	reqURL := t.baseURL + "/2/tweets/search/recent?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", t.ua)
	req.Header.Set("Authorization", "Bearer "+t.cfg.BearerToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search tweets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result twitterSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	usernames := make(map[string]string, len(result.Includes.Users))
	for _, user := range result.Includes.Users {
		usernames[user.ID] = user.Username
	}

	var posts []domain.Post
	for _, tweet := range result.Data {
		if tweet.ID == "" || tweet.Text == "" {
			continue
		}

		post := domain.Post{
			UID:       "twitter_" + tweet.ID,
			Platform:  "twitter",
			Content:   tweet.Text,
			Upvotes:   tweet.PublicMetrics.LikeCount,
			Comments:  tweet.PublicMetrics.ReplyCount,
			CreatedAt: tweet.CreatedAt.UTC(),
			URL:       "https://twitter.com/i/web/status/" + tweet.ID,
		}
		if username, ok := usernames[tweet.AuthorID]; ok && username != "" {
			post.Author = "@" + username
			post.URL = "https://twitter.com/" + username + "/status/" + tweet.ID
		}

		t.dec.decorate(&post)
		posts = append(posts, post)
	}
	return posts, nil
}
