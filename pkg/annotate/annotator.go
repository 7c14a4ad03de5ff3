package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

// Annotator uses an LLM to extract product-opportunity signals from posts
type Annotator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewAnnotator creates a new LLM annotator
func NewAnnotator(cfg config.LLMConfig) *Annotator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Annotator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for post annotation
const defaultSystemPrompt = `You are an AI assistant that analyzes social media posts for product opportunity signals.
For each post decide whether the author describes a concrete problem a product could solve.

Each annotation should contain:
- post_num: the post's number from the input list
- summary: one sentence describing the core problem, empty string when there is none
- pain_severity: how severe the problem is (1-10, use 1 when there is no real problem)
- category: the kind of solution the author needs, one of: new_invention, better_alternative, cheaper_option, quality_improvement, none
- keywords: 3-5 lowercase keywords naming the product area
- willingness_to_pay: true when the author indicates they would pay for a solution
- confidence: 0-100, your confidence that the annotation reflects the post

Examples of good summaries:
- "Pet owners forget medication doses and want automatic scheduling with reminders."
- "Parents cannot find a stroller that folds with one hand while holding a child."
- "Freelancers lose billable hours because no invoicing tool handles retainers."

Examples of bad summaries:
- "The post discusses a problem with strollers..."
- "This post is about pet medication..."
- "The author complains that..."

IMPORTANT: Every post MUST get an annotation, even posts with no problem at all (use pain_severity 1 and category none for those).`

// content longer than this is truncated in the prompt to bound token usage
const maxPromptContent = 1000

// delay between parse-failure retries, scaled by attempt number
const retryDelay = 200 * time.Millisecond

// Annotate sends posts to the LLM in a single batch request and returns the
// usable annotations. Records below the configured severity or confidence
// floors are dropped, the caller still marks every submitted post annotated.
func (a *Annotator) Annotate(ctx context.Context, posts []domain.Post) ([]domain.Annotation, error) {
	if len(posts) == 0 {
		return []domain.Annotation{}, nil
	}

	prompt := a.buildPrompt(posts)

	retries := a.config.Retries
	if retries < 1 {
		retries = 1
	}

	// retry when the model returns something we cannot parse
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * retryDelay):
			}
		}

		chatReq := openai.ChatCompletionRequest{
			Model:       a.config.Model,
			Temperature: float32(a.config.Temperature),
			MaxTokens:   a.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: a.systemMsg,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		}

		resp, err := a.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		annotations, err := a.parseResponse(resp.Choices[0].Message.Content, posts)
		if err == nil {
			return annotations, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", retries, lastErr)
}

// buildPrompt creates the user prompt enumerating the batch
func (a *Annotator) buildPrompt(posts []domain.Post) string {
	var sb strings.Builder

	sb.WriteString("Analyze these posts for product opportunity signals:\n\n")
	for i, post := range posts {
		sb.WriteString(fmt.Sprintf("Post %d:\n", i+1))
		if post.Title != "" {
			sb.WriteString(fmt.Sprintf("Title: %s\n", post.Title))
		}
		if post.Content != "" {
			content := post.Content
			if len(content) > maxPromptContent {
				content = content[:maxPromptContent] + "..."
			}
			sb.WriteString(fmt.Sprintf("Content: %s\n", content))
		}
		sb.WriteString(fmt.Sprintf("Engagement: %d upvotes, %d comments\n", post.Upvotes, post.Comments))
		sb.WriteString("\n")
	}

	sb.WriteString("Respond with a JSON array of annotation objects, one per post, no other text.")
	return sb.String()
}

// annotationItem is the wire format the model replies with, keyed by post_num
type annotationItem struct {
	PostNum          int      `json:"post_num"`
	Summary          string   `json:"summary"`
	PainSeverity     float64  `json:"pain_severity"`
	Category         string   `json:"category"`
	Keywords         []string `json:"keywords"`
	WillingnessToPay bool     `json:"willingness_to_pay"`
	Confidence       int      `json:"confidence"`
}

// parseResponse extracts the JSON array from the model reply and converts it
// to domain annotations, dropping unusable records
func (a *Annotator) parseResponse(content string, posts []domain.Post) ([]domain.Annotation, error) {
	// models wrap JSON in markdown fences from time to time
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json array found in response")
	}

	var items []annotationItem
	if err := json.Unmarshal([]byte(content[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("failed to parse json array response: %w", err)
	}

	var annotations []domain.Annotation
	seen := make(map[int]bool)
	for _, item := range items {
		if item.PostNum < 1 || item.PostNum > len(posts) || seen[item.PostNum] {
			continue
		}
		seen[item.PostNum] = true

		severity := item.PainSeverity
		if severity < 1 {
			severity = 1
		} else if severity > 10 {
			severity = 10
		}
		confidence := item.Confidence
		if confidence < 0 {
			confidence = 0
		} else if confidence > 100 {
			confidence = 100
		}

		// below either floor there is no usable annotation
		if severity < a.config.MinSeverity || confidence < a.config.MinConfidence {
			continue
		}

		annotations = append(annotations, domain.Annotation{
			PostID:           posts[item.PostNum-1].ID,
			Summary:          strings.TrimSpace(item.Summary),
			PainSeverity:     severity,
			Category:         domain.ParseCategory(item.Category),
			Keywords:         item.Keywords,
			WillingnessToPay: item.WillingnessToPay,
			Confidence:       confidence,
			Model:            a.config.Model,
		})
	}

	return annotations, nil
}
