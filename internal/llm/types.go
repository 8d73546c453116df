package llm

import "github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"

type LLMRequest struct {
	Model  string
	Prompt string
	// Options is shared between requests and must be treated as read-only.
	Options *models.GenerationConfig
}

type LLMResponse struct {
	Content    string
	StopReason string
}
