package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	stream := false
	generateRequest := &api.GenerateRequest{
		Model:   request.Model,
		Prompt:  request.Prompt,
		Stream:  &stream,
		Options: buildOptions(request.Options),
	}

	var content strings.Builder
	var doneReason string
	err := c.Client.Generate(ctx, generateRequest, func(resp api.GenerateResponse) error {
		content.WriteString(resp.Response)
		if resp.Done {
			doneReason = resp.DoneReason
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke ollama model %s: %w", request.Model, err)
	}

	return &llm.LLMResponse{
		Content:    content.String(),
		StopReason: doneReason,
	}, nil
}

// buildOptions maps the sampling config onto ollama's option keys, leaving
// out anything not configured.
func buildOptions(cfg *models.GenerationConfig) map[string]any {
	if cfg == nil {
		return nil
	}

	options := make(map[string]any, 4)
	if cfg.Temperature != nil {
		options["temperature"] = *cfg.Temperature
	}
	if cfg.RepeatPenalty != nil {
		options["repeat_penalty"] = *cfg.RepeatPenalty
	}
	if cfg.TopK != nil {
		options["top_k"] = *cfg.TopK
	}
	if cfg.TopP != nil {
		options["top_p"] = *cfg.TopP
	}

	if len(options) == 0 {
		return nil
	}
	return options
}
