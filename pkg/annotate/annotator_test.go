package annotate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rydeebs/product-browser/pkg/config"
	"github.com/rydeebs/product-browser/pkg/domain"
)

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:      endpoint,
		APIKey:        "test-key",
		Model:         "gpt-4o-mini",
		Temperature:   0.3,
		MaxTokens:     500,
		Retries:       3,
		MinSeverity:   5,
		MinConfidence: 30,
	}
}

func TestAnnotator_Annotate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Content: `Here are the annotations:

[
  {
    "post_num": 1,
    "summary": "Pet owners forget medication doses and want automatic scheduling with reminders.",
    "pain_severity": 8.5,
    "category": "better_alternative",
    "keywords": ["pet", "medication", "reminder"],
    "willingness_to_pay": true,
    "confidence": 85
  },
  {
    "post_num": 2,
    "summary": "Commuters cannot find a bag that fits both a laptop and gym gear.",
    "pain_severity": 6,
    "category": "new_invention",
    "keywords": ["bag", "commute", "laptop"],
    "willingness_to_pay": false,
    "confidence": 40
  }
]`,
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	annotator := NewAnnotator(testConfig(server.URL + "/v1"))

	posts := []domain.Post{
		{ID: 11, UID: "reddit_a1", Title: "Pet meds are a mess", Content: "I keep forgetting doses...", Upvotes: 42, Comments: 7},
		{ID: 22, UID: "reddit_b2", Title: "Bag frustration", Content: "Nothing fits my laptop and gym gear", Upvotes: 5, Comments: 1},
	}

	annotations, err := annotator.Annotate(context.Background(), posts)
	require.NoError(t, err)
	require.Len(t, annotations, 2)

	assert.Equal(t, int64(11), annotations[0].PostID)
	assert.InEpsilon(t, 8.5, annotations[0].PainSeverity, 0.001)
	assert.Equal(t, domain.CategoryBetterAlternative, annotations[0].Category)
	assert.Equal(t, []string{"pet", "medication", "reminder"}, annotations[0].Keywords)
	assert.True(t, annotations[0].WillingnessToPay)
	assert.Equal(t, 85, annotations[0].Confidence)
	assert.Equal(t, "gpt-4o-mini", annotations[0].Model)
	assert.Contains(t, annotations[0].Summary, "Pet owners forget")

	assert.Equal(t, int64(22), annotations[1].PostID)
	assert.InEpsilon(t, 6.0, annotations[1].PainSeverity, 0.001)
	assert.Equal(t, domain.CategoryNewInvention, annotations[1].Category)
	assert.False(t, annotations[1].WillingnessToPay)
	assert.Equal(t, 40, annotations[1].Confidence)
}

func TestAnnotator_Annotate_EmptyInput(t *testing.T) {
	annotator := NewAnnotator(config.LLMConfig{APIKey: "test-key", Model: "gpt-4o-mini"})

	annotations, err := annotator.Annotate(context.Background(), []domain.Post{})
	require.NoError(t, err)
	assert.Empty(t, annotations)
}

func TestAnnotator_Annotate_DropsUnusable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Content: `[
  {"post_num": 1, "summary": "severe problem", "pain_severity": 14, "category": "new_invention", "keywords": ["a"], "confidence": 90},
  {"post_num": 1, "summary": "duplicate", "pain_severity": 9, "category": "none", "keywords": ["b"], "confidence": 90},
  {"post_num": 2, "summary": "mild gripe", "pain_severity": 3, "category": "none", "keywords": ["c"], "confidence": 90},
  {"post_num": 3, "summary": "model is unsure", "pain_severity": 8, "category": "none", "keywords": ["d"], "confidence": 10},
  {"post_num": 9, "summary": "phantom post", "pain_severity": 8, "category": "none", "keywords": ["e"], "confidence": 90}
]`,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	annotator := NewAnnotator(testConfig(server.URL + "/v1"))

	posts := []domain.Post{{ID: 1}, {ID: 2}, {ID: 3}}
	annotations, err := annotator.Annotate(context.Background(), posts)
	require.NoError(t, err)

	// only the first record survives, severity clamped to the scale ceiling
	require.Len(t, annotations, 1)
	assert.Equal(t, int64(1), annotations[0].PostID)
	assert.InEpsilon(t, 10.0, annotations[0].PainSeverity, 0.001)
	assert.Equal(t, "severe problem", annotations[0].Summary)
}

func TestAnnotator_Annotate_RetriesOnBadJSON(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		content := "sorry, I cannot help with that"
		if calls > 1 {
			content = `[{"post_num": 1, "summary": "problem", "pain_severity": 7, "category": "none", "keywords": ["x"], "confidence": 60}]`
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	annotator := NewAnnotator(testConfig(server.URL + "/v1"))

	annotations, err := annotator.Annotate(context.Background(), []domain.Post{{ID: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, annotations, 1)
	assert.Equal(t, int64(1), annotations[0].PostID)
}

func TestAnnotator_Annotate_FailsAfterRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "not json at all"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	annotator := NewAnnotator(testConfig(server.URL + "/v1"))

	_, err := annotator.Annotate(context.Background(), []domain.Post{{ID: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestAnnotator_Annotate_RequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	annotator := NewAnnotator(testConfig(server.URL + "/v1"))

	_, err := annotator.Annotate(context.Background(), []domain.Post{{ID: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request failed")
}

func TestAnnotator_CustomSystemPrompt(t *testing.T) {
	customPrompt := "You are a specialized product researcher. Rate pain 1-10."

	annotator := NewAnnotator(config.LLMConfig{APIKey: "test-key", Model: "gpt-4o-mini", SystemPrompt: customPrompt})
	assert.Equal(t, customPrompt, annotator.systemMsg)
}

func TestAnnotator_DefaultSystemPrompt(t *testing.T) {
	annotator := NewAnnotator(config.LLMConfig{APIKey: "test-key", Model: "gpt-4o-mini"})

	assert.Contains(t, annotator.systemMsg, "product opportunity signals")
	assert.Contains(t, annotator.systemMsg, "pain_severity")
	assert.Contains(t, annotator.systemMsg, "willingness_to_pay")
	assert.Contains(t, annotator.systemMsg, "Every post MUST get an annotation")
}

func TestAnnotator_buildPrompt(t *testing.T) {
	annotator := &Annotator{config: config.LLMConfig{}}

	posts := []domain.Post{
		{
			Title:    "Stroller wheels keep breaking",
			Content:  "Third set this year " + strings.Repeat("x", maxPromptContent),
			Upvotes:  12,
			Comments: 4,
		},
		{
			Content: "untitled feed entry",
		},
	}

	prompt := annotator.buildPrompt(posts)

	assert.Contains(t, prompt, "Post 1:")
	assert.Contains(t, prompt, "Title: Stroller wheels keep breaking")
	assert.Contains(t, prompt, "Content: Third set this year")
	assert.Contains(t, prompt, "...")
	assert.Contains(t, prompt, "Engagement: 12 upvotes, 4 comments")
	assert.Contains(t, prompt, "Post 2:")
	assert.NotContains(t, prompt, "Title: untitled")
	assert.Contains(t, prompt, "Respond with a JSON array")

	// truncation keeps the prompt bounded
	assert.Less(t, len(prompt), 2*maxPromptContent)
}

func TestAnnotator_parseResponse(t *testing.T) {
	annotator := &Annotator{config: config.LLMConfig{}} // no floors, clamping only

	posts := []domain.Post{{ID: 101}, {ID: 102}, {ID: 103}}

	tests := []struct {
		name        string
		response    string
		wantErr     string
		wantCount   int
		checkResult func(t *testing.T, annotations []domain.Annotation)
	}{
		{
			name: "valid json array",
			response: `[
				{"post_num": 1, "summary": "first", "pain_severity": 7.5, "category": "cheaper_option", "keywords": ["k1"], "confidence": 70},
				{"post_num": 2, "summary": "second", "pain_severity": 4, "category": "none", "keywords": [], "confidence": 20}
			]`,
			wantCount: 2,
			checkResult: func(t *testing.T, annotations []domain.Annotation) {
				assert.Equal(t, int64(101), annotations[0].PostID)
				assert.InEpsilon(t, 7.5, annotations[0].PainSeverity, 0.001)
				assert.Equal(t, domain.CategoryCheaperOption, annotations[0].Category)
				assert.Equal(t, int64(102), annotations[1].PostID)
			},
		},
		{
			name: "json wrapped in markdown fences",
			response: "```json\n" +
				`[{"post_num": 3, "summary": "fenced", "pain_severity": 6, "category": "none", "keywords": ["k"], "confidence": 50}]` +
				"\n```",
			wantCount: 1,
			checkResult: func(t *testing.T, annotations []domain.Annotation) {
				assert.Equal(t, int64(103), annotations[0].PostID)
			},
		},
		{
			name:      "json with surrounding prose",
			response:  `Sure! [{"post_num": 1, "summary": "ok", "pain_severity": 5, "category": "none", "confidence": 50}] Hope that helps.`,
			wantCount: 1,
		},
		{
			name: "values clamped to their scales",
			response: `[
				{"post_num": 1, "summary": "no problem", "pain_severity": 0, "category": "none", "confidence": -5},
				{"post_num": 2, "summary": "over the top", "pain_severity": 99, "category": "none", "confidence": 150}
			]`,
			wantCount: 2,
			checkResult: func(t *testing.T, annotations []domain.Annotation) {
				assert.InEpsilon(t, 1.0, annotations[0].PainSeverity, 0.001)
				assert.Equal(t, 0, annotations[0].Confidence)
				assert.InEpsilon(t, 10.0, annotations[1].PainSeverity, 0.001)
				assert.Equal(t, 100, annotations[1].Confidence)
			},
		},
		{
			name:      "unknown category normalized to none",
			response:  `[{"post_num": 1, "summary": "odd", "pain_severity": 5, "category": "miracle_cure", "confidence": 50}]`,
			wantCount: 1,
			checkResult: func(t *testing.T, annotations []domain.Annotation) {
				assert.Equal(t, domain.CategoryNone, annotations[0].Category)
			},
		},
		{
			name:     "no array in response",
			response: "I could not process these posts.",
			wantErr:  "no json array found",
		},
		{
			name:     "unbalanced brackets",
			response: `[{"post_num": 1, "summary": "cut off`,
			wantErr:  "no json array found",
		},
		{
			name:     "malformed array",
			response: `[{"post_num": }]`,
			wantErr:  "failed to parse json array response",
		},
		{
			name:      "out of range post numbers skipped",
			response:  `[{"post_num": 0, "summary": "zero", "pain_severity": 5, "confidence": 50}, {"post_num": 4, "summary": "beyond", "pain_severity": 5, "confidence": 50}]`,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotations, err := annotator.parseResponse(tt.response, posts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, annotations, tt.wantCount)
			if tt.checkResult != nil {
				tt.checkResult(t, annotations)
			}
		})
	}
}
