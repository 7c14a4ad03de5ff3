package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/rydeebs/product-browser/pkg/config"
)

// volumeMultiplier converts a relative interest value (0-100) into an
// estimated absolute monthly search volume
const volumeMultiplier = 100

// Client queries a trends-proxy service for relative keyword interest and
// estimates absolute search volume from the series. Lookups are cached per
// keyword for the configured TTL because the upstream rate-limits hard.
type Client struct {
	endpoint string
	client   *http.Client
	ttl      time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time
}

type cacheEntry struct {
	volume  int
	fetched time.Time
}

// NewClient creates a trends client for the configured proxy endpoint
func NewClient(cfg config.TrendsConfig) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
		ttl:      cfg.CacheTTL,
		cache:    make(map[string]cacheEntry),
		now:      time.Now,
	}
}

// SearchVolume returns the estimated monthly search volume for a keyword.
// Fresh cache entries are served without a network call, errors are never
// cached so the next lookup retries.
func (c *Client) SearchVolume(ctx context.Context, keyword string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if key == "" {
		return 0, nil
	}

	c.mu.Lock()
	entry, ok := c.cache[key]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.fetched) < c.ttl {
		return entry.volume, nil
	}

	volume, err := c.fetch(ctx, key)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{volume: volume, fetched: c.now()}
	c.mu.Unlock()

	lgr.Printf("[DEBUG] search volume for %q: %d", key, volume)
	return volume, nil
}

// fetch calls the proxy's interest endpoint and averages the relative series
func (c *Client) fetch(ctx context.Context, keyword string) (int, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	reqURL := c.endpoint + "/api/trends/interest?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create trends request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch trends for %q: %w", keyword, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("trends request for %q returned status %d", keyword, resp.StatusCode)
	}

	var apiResponse struct {
		Keyword string `json:"keyword"`
		Data    []struct {
			Date  string `json:"date"`
			Value int    `json:"value"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return 0, fmt.Errorf("decode trends response: %w", err)
	}

	if len(apiResponse.Data) == 0 {
		return 0, nil
	}

	sum := 0
	for _, point := range apiResponse.Data {
		sum += point.Value
	}
	return sum / len(apiResponse.Data) * volumeMultiplier, nil
}
