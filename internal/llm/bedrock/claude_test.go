package bedrock

import (
	"encoding/json"
	"testing"

	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"
)

func TestBuildClaudeRequest_NoOptions(t *testing.T) {
	payload := buildClaudeRequest(llm.LLMRequest{Model: "claude", Prompt: "Hello"})

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"temperature", "top_k", "top_p"} {
		if _, ok := decoded[key]; ok {
			t.Errorf("expected %s to be omitted", key)
		}
	}
	if decoded["anthropic_version"] != anthropicVersion {
		t.Errorf("expected anthropic_version %s, got %v", anthropicVersion, decoded["anthropic_version"])
	}
	if len(payload.Messages) != 1 || payload.Messages[0].Content != "Hello" || payload.Messages[0].Role != "user" {
		t.Errorf("unexpected messages: %+v", payload.Messages)
	}
}

func TestBuildClaudeRequest_MapsSampling(t *testing.T) {
	temperature := 0.4
	topK := 20
	topP := 0.8
	penalty := 1.3

	payload := buildClaudeRequest(llm.LLMRequest{
		Model:  "claude",
		Prompt: "Hello",
		Options: &models.GenerationConfig{
			Temperature:   &temperature,
			TopK:          &topK,
			TopP:          &topP,
			RepeatPenalty: &penalty,
		},
	})

	if payload.Temperature == nil || *payload.Temperature != 0.4 {
		t.Errorf("expected temperature 0.4, got %v", payload.Temperature)
	}
	if payload.TopK == nil || *payload.TopK != 20 {
		t.Errorf("expected top_k 20, got %v", payload.TopK)
	}
	if payload.TopP == nil || *payload.TopP != 0.8 {
		t.Errorf("expected top_p 0.8, got %v", payload.TopP)
	}
}

func TestParseClaudeResponse(t *testing.T) {
	resp, err := parseClaudeResponse([]byte(`{"content":[{"type":"text","text":"I am fine."}],"stop_reason":"end_turn"}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if resp.Content != "I am fine." {
		t.Errorf("expected content 'I am fine.', got '%s'", resp.Content)
	}
	if resp.StopReason != "end_turn" {
		t.Errorf("expected stop reason end_turn, got '%s'", resp.StopReason)
	}

	empty, err := parseClaudeResponse([]byte(`{"content":[],"stop_reason":"max_tokens"}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if empty.Content != "" {
		t.Errorf("expected empty content, got '%s'", empty.Content)
	}

	if _, err := parseClaudeResponse([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed body")
	}
}
