package gpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"
	"github.com/stretchr/testify/require"
)

const chatCompletionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "message": {"role": "assistant", "content": "I am fine."}, "finish_reason": "stop"}
  ]
}`

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "")
	require.Error(t, err)
}

func TestInvokeModel_Success(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL)
	require.NoError(t, err)

	temperature := 0.3
	resp, err := client.InvokeModel(context.Background(), llm.LLMRequest{
		Model:   "gpt-4o-mini",
		Prompt:  "Hello How Are You?",
		Options: &models.GenerationConfig{Temperature: &temperature},
	})
	require.NoError(t, err)
	require.Equal(t, "I am fine.", resp.Content)
	require.Equal(t, "stop", resp.StopReason)

	require.Equal(t, "gpt-4o-mini", captured["model"])
	require.InDelta(t, 0.3, captured["temperature"], 1e-9)
	require.NotContains(t, captured, "top_p")
}

func TestInvokeModel_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL)
	require.NoError(t, err)

	_, err = client.InvokeModel(context.Background(), llm.LLMRequest{Model: "gpt-4o-mini", Prompt: "p"})
	require.Error(t, err)
}

func TestInvokeModel_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[]}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL)
	require.NoError(t, err)

	_, err = client.InvokeModel(context.Background(), llm.LLMRequest{Model: "m", Prompt: "p"})
	require.Error(t, err)
}
