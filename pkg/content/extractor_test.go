package content

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

func testExtractionConfig() config.ExtractionConfig {
	return config.ExtractionConfig{
		Enabled:       true,
		Timeout:       10 * time.Second,
		MinTextLength: 20,
		UserAgent:     "product-browser/1.0",
	}
}

func TestHTTPExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		wantContent string
		wantErr     string
		statusCode  int
	}{
		{
			name: "successful extraction",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head><title>Broken Stroller Wheels</title></head>
				<body>
					<article>
						<h1>Broken Stroller Wheels</h1>
						<p>Our stroller wheels cracked after two months of light sidewalk use.</p>
						<p>The manufacturer refuses to sell replacement wheels separately.</p>
					</article>
				</body>
				</html>`,
			wantContent: "stroller wheels cracked",
			statusCode:  http.StatusOK,
		},
		{
			name: "extraction below minimum length",
			htmlContent: `<!DOCTYPE html>
				<html>
				<body>
					<p>Too short</p>
				</body>
				</html>`,
			wantErr:    "too short",
			statusCode: http.StatusOK,
		},
		{
			name:        "server error",
			htmlContent: "error",
			wantErr:     "unexpected status code 500",
			statusCode:  http.StatusInternalServerError,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			wantErr:     "unexpected status code 404",
			statusCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "product-browser/1.0", r.Header.Get("User-Agent"))
				if tt.statusCode == http.StatusOK {
					w.Header().Set("Content-Type", "text/html")
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			extractor := NewHTTPExtractor(testExtractionConfig())

			ctx := context.Background()
			content, err := extractor.Extract(ctx, server.URL)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, content, tt.wantContent)
		})
	}
}

func TestHTTPExtractor_Extract_CapsLongContent(t *testing.T) {
	// page text well past the stored content limit, paragraphs kept distinct
	// so deduplication does not collapse them
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><body><article><h1>Zipper Trouble</h1>")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "<p>Failure number %d: the zipper on this bag split open mid commute again and spilled a laptop, two chargers and a full water bottle across the platform while everyone watched.</p>", i)
	}
	sb.WriteString("</article></body></html>")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(sb.String()))
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(testExtractionConfig())

	content, err := extractor.Extract(context.Background(), server.URL)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(content), domain.MaxContentLen)
	assert.Greater(t, len(content), 1000)
	assert.Contains(t, content, "zipper")
}

func TestHTTPExtractor_Extract_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>Too late</body></html>"))
	}))
	defer server.Close()

	cfg := testExtractionConfig()
	cfg.Timeout = 100 * time.Millisecond
	extractor := NewHTTPExtractor(cfg)

	ctx := context.Background()
	_, err := extractor.Extract(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestHTTPExtractor_Extract_InvalidURL(t *testing.T) {
	extractor := NewHTTPExtractor(testExtractionConfig())

	tests := []struct {
		name string
		url  string
	}{
		{
			name: "empty url",
			url:  "",
		},
		{
			name: "invalid scheme",
			url:  "not-a-url",
		},
		{
			name: "unreachable host",
			url:  "http://localhost:99999/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			_, err := extractor.Extract(ctx, tt.url)
			require.Error(t, err)
		})
	}
}

func TestHTTPExtractor_Extract_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(5 * time.Second):
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html><body>Content</body></html>"))
		}
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(testExtractionConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extractor.Extract(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}
