package models

import (
	"encoding/json"
	"errors"
)

// FallbackResponse is returned in place of generated text whenever the
// backend fails, whatever the cause.
const FallbackResponse = "Failed to generate response."

var ErrMissingPrompt = errors.New("prompt field is required")

// Input message
type PromptRequest struct {
	Prompt string `json:"prompt" description:"The prompt to send to the model"`
}

// UnmarshalJSON rejects bodies where prompt is absent or null. An empty
// string is a present prompt.
func (p *PromptRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Prompt *string `json:"prompt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Prompt == nil {
		return ErrMissingPrompt
	}

	p.Prompt = *raw.Prompt
	return nil
}

type PromptResponse struct {
	Response string `json:"response" description:"Generated text, or the fallback text when generation failed"`
}

// GenerationConfig holds the sampling parameters sent with every backend call.
// Nil fields are left to the backend's defaults.
type GenerationConfig struct {
	Temperature   *float64 `json:"temperature,omitempty" yaml:"temperature"`
	RepeatPenalty *float64 `json:"repeat_penalty,omitempty" yaml:"repeat_penalty"`
	TopK          *int     `json:"top_k,omitempty" yaml:"top_k"`
	TopP          *float64 `json:"top_p,omitempty" yaml:"top_p"`
}

// Clone returns a deep copy so the caller owns every pointed-to value.
func (g *GenerationConfig) Clone() *GenerationConfig {
	if g == nil {
		return nil
	}

	clone := &GenerationConfig{}
	if g.Temperature != nil {
		v := *g.Temperature
		clone.Temperature = &v
	}
	if g.RepeatPenalty != nil {
		v := *g.RepeatPenalty
		clone.RepeatPenalty = &v
	}
	if g.TopK != nil {
		v := *g.TopK
		clone.TopK = &v
	}
	if g.TopP != nil {
		v := *g.TopP
		clone.TopP = &v
	}
	return clone
}
