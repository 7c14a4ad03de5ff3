package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// HTTPExtractor pulls readable text from pages linked by body-less posts.
// Link-only posts carry their problem description on the landing page, the
// annotator needs that text to rate them.
type HTTPExtractor struct {
	minLength int
	userAgent string
	client    *http.Client
}

// NewHTTPExtractor creates a content extractor from the extraction settings
func NewHTTPExtractor(cfg config.ExtractionConfig) *HTTPExtractor {
	return &HTTPExtractor{
		minLength: cfg.MinTextLength,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Extract retrieves the page and returns its main text, capped at the stored
// content limit. Extractions below the configured minimum length are
// rejected so boilerplate-only pages do not feed the annotator.
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}

	if result == nil {
		return "", fmt.Errorf("no content extracted from %s", urlStr)
	}

	content := strings.TrimSpace(result.ContentText)
	if content == "" {
		return "", fmt.Errorf("no text content extracted from %s", urlStr)
	}
	if len(content) < e.minLength {
		return "", fmt.Errorf("extracted content from %s too short: %d chars", urlStr, len(content))
	}
	if len(content) > domain.MaxContentLen {
		content = content[:domain.MaxContentLen]
	}

	return content, nil
}
