package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	for _, config := range []*Config{DefaultGeminiConfig(), DefaultClaudeConfig()} {
		t.Run(string(config.Provider), func(t *testing.T) {
			client, err := NewClient(context.Background(), config, "")

			assert.Nil(t, client)
			assert.ErrorContains(t, err, "API key is required")
		})
	}
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key")

	assert.ErrorContains(t, err, "unsupported provider")
}

func TestNewClient_Anthropic(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultClaudeConfig(), "key")
	require.NoError(t, err)
	defer client.Close()

	assert.IsType(t, &ClaudeClient{}, client)
	assert.Equal(t, "claude-opus-4-1", client.GetModel(TierAdvanced))
}

func TestExtractTextFromResponse(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr string
	}{
		{name: "nil", resp: nil, wantErr: "no candidates"},
		{
			name:    "prompt blocked",
			resp:    &genai.GenerateContentResponse{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}},
			wantErr: "prompt blocked",
		},
		{
			name: "safety stop",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
				Content:      &genai.Content{Parts: []genai.Part{genai.Text("partial")}},
			}}},
			wantErr: "response blocked",
		},
		{
			name: "no text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
			}}},
			wantErr: "no text parts",
		},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: "no candidates"},
		{
			name:    "no content",
			resp:    &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantErr: "no content",
		},
		{
			name: "joined parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"name":`), genai.Text(`"Jane"}`)}},
			}}},
			want: `{"name":"Jane"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractTextFromResponse(tt.resp)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// newMessagesServer answers every Messages request with a single text block.
func newMessagesServer(t *testing.T, status int, text string, seen *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if seen != nil {
			_ = json.Unmarshal(body, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "msg_test",
			"type":          "message",
			"role":          "assistant",
			"model":         "claude-sonnet-4-5",
			"content":       []map[string]any{{"type": "text", "text": text}},
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"usage":         map[string]any{"input_tokens": 10, "output_tokens": 5},
		})
	}))
}

func TestClaudeClient_GenerateJSON(t *testing.T) {
	var seen map[string]any
	server := newMessagesServer(t, http.StatusOK, "Here you go:\n```json\n{\"name\": \"Jane\"}\n```", &seen)
	defer server.Close()

	client, err := NewClaudeClient(DefaultClaudeConfig(), "key",
		anthropicoption.WithBaseURL(server.URL),
		anthropicoption.WithMaxRetries(0),
	)
	require.NoError(t, err)

	got, err := client.GenerateJSON(context.Background(), "extract", TierStandard)
	require.NoError(t, err)

	assert.Equal(t, `{"name": "Jane"}`, got)
	assert.Equal(t, "claude-sonnet-4-5", seen["model"])
	assert.EqualValues(t, maxOutputTokens, seen["max_tokens"])
	assert.EqualValues(t, temperature, seen["temperature"])
}

func TestClaudeClient_GenerateContent_APIError(t *testing.T) {
	server := newMessagesServer(t, http.StatusInternalServerError, "", nil)
	defer server.Close()

	client, err := NewClaudeClient(DefaultClaudeConfig(), "key",
		anthropicoption.WithBaseURL(server.URL),
		anthropicoption.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "extract", TierStandard)

	assert.ErrorContains(t, err, "failed to generate content")
}

func TestClaudeClient_NoModelForTier(t *testing.T) {
	client, err := NewClaudeClient(&Config{Provider: ProviderAnthropic, Models: map[ModelTier]string{}}, "key")
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "extract", TierAdvanced)

	assert.ErrorContains(t, err, "no model configured")
}
