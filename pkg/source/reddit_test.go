package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/config"
)

const redditListingFixture = `{
	"data": {
		"children": [
			{"kind": "t3", "data": {
				"id": "abc123",
				"title": "Wish there was a double stroller that lasts",
				"selftext": "Every model we tried rattles apart after a month.",
				"author": "tiredparent",
				"permalink": "/r/Parenting/comments/abc123/wish_there_was/",
				"score": 142,
				"num_comments": 37,
				"created_utc": 1755600000
			}},
			{"kind": "t1", "data": {"id": "cmt1", "title": "just a comment", "score": 999}},
			{"kind": "t3", "data": {"id": "low1", "title": "Low score post", "score": 3}},
			{"kind": "t3", "data": {"id": "", "title": "No id", "score": 50}},
			{"kind": "t3", "data": {
				"id": "del99",
				"title": "Our diaper bag zipper broke again",
				"selftext": "",
				"author": "",
				"permalink": "/r/Parenting/comments/del99/zipper/",
				"score": 55,
				"num_comments": 12,
				"created_utc": 0
			}}
		]
	}
}`

func testRedditConfig(subreddits ...string) config.SourcesConfig {
	return config.SourcesConfig{
		UserAgent:      "product-browser/1.0",
		Timeout:        5 * time.Second,
		SignalPatterns: []string{"wish there was", "broke"},
		Reddit: config.RedditConfig{
			Enabled:    true,
			Subreddits: subreddits,
			Listing:    "top",
			TimeRange:  "week",
			Limit:      25,
			MinUpvotes: 10,
		},
	}
}

func TestReddit_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/Parenting/top.json", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "week", r.URL.Query().Get("t"))
		assert.Equal(t, "product-browser/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(redditListingFixture))
	}))
	defer server.Close()

	reddit := NewReddit(testRedditConfig("Parenting"), &staticKeywords{terms: []string{"stroller"}})
	reddit.baseURL = server.URL

	posts, err := reddit.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2, "comment, low-score and id-less entries dropped")

	first := posts[0]
	assert.Equal(t, "reddit_abc123", first.UID)
	assert.Equal(t, "reddit", first.Platform)
	assert.Equal(t, "Wish there was a double stroller that lasts", first.Title)
	assert.Equal(t, "Wish there was a double stroller that lasts\n\nEvery model we tried rattles apart after a month.", first.Content)
	assert.Equal(t, "tiredparent", first.Author)
	assert.Equal(t, "https://reddit.com/r/Parenting/comments/abc123/wish_there_was/", first.URL)
	assert.Equal(t, 142, first.Upvotes)
	assert.Equal(t, 37, first.Comments)
	assert.Equal(t, time.Unix(1755600000, 0).UTC(), first.CreatedAt)
	assert.Len(t, first.ContentHash, 32)
	assert.False(t, first.ScrapedAt.IsZero())
	assert.Equal(t, []string{"wish there was"}, first.Signals)
	assert.Equal(t, []string{"stroller"}, first.Keywords, "reddit has no tags, lexical fallback fills in")

	second := posts[1]
	assert.Equal(t, "reddit_del99", second.UID)
	assert.Equal(t, "Our diaper bag zipper broke again", second.Content, "no selftext means title-only content")
	assert.Equal(t, "[deleted]", second.Author)
	assert.True(t, second.CreatedAt.IsZero(), "zero created_utc stays unset")
	assert.Equal(t, []string{"broke"}, second.Signals)
}

func TestReddit_Fetch_PartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/r/broken/top.json" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(redditListingFixture))
	}))
	defer server.Close()

	reddit := NewReddit(testRedditConfig("Parenting", "broken"), nil)
	reddit.baseURL = server.URL

	posts, err := reddit.Fetch(context.Background())
	require.NoError(t, err, "one healthy subreddit keeps the pass alive")
	assert.Len(t, posts, 2)
}

func TestReddit_Fetch_AllFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	reddit := NewReddit(testRedditConfig("one", "two"), nil)
	reddit.baseURL = server.URL

	_, err := reddit.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 subreddits failed")
	assert.Contains(t, err.Error(), "unexpected status code: 500")
}

func TestReddit_Fetch_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	reddit := NewReddit(testRedditConfig("Parenting"), nil)
	reddit.baseURL = server.URL

	_, err := reddit.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestReddit_Fetch_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	reddit := NewReddit(testRedditConfig("Parenting"), nil)
	reddit.baseURL = server.URL

	_, err := reddit.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode listing")
}

func TestReddit_Name(t *testing.T) {
	reddit := NewReddit(testRedditConfig(), nil)
	assert.Equal(t, "reddit", reddit.Name())
}
