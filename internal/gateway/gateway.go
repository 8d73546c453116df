package gateway

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"
	"github.com/rs/zerolog"
)

type Options struct {
	Model string
	// SystemPrompt is a text/template referencing {{.Prompt}}. Empty means the
	// prompt is forwarded as is.
	SystemPrompt string
	Generation   *models.GenerationConfig
}

// Gateway forwards prompts to a single backend. It is built once at startup
// and never modified, so one instance serves all concurrent requests.
type Gateway struct {
	llmClient  llm.LLMClient
	model      string
	template   *template.Template
	generation *models.GenerationConfig
	logger     *zerolog.Logger
}

type promptData struct {
	Prompt string
}

func New(llmClient llm.LLMClient, opts Options, logger *zerolog.Logger) (*Gateway, error) {
	if llmClient == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	var tmpl *template.Template
	if opts.SystemPrompt != "" {
		parsed, err := ParseTemplate(opts.SystemPrompt)
		if err != nil {
			return nil, err
		}
		tmpl = parsed
	}

	return &Gateway{
		llmClient:  llmClient,
		model:      opts.Model,
		template:   tmpl,
		generation: opts.Generation.Clone(),
		logger:     logger,
	}, nil
}

// promptMarker stands in for the prompt when a template is checked.
const promptMarker = "\x00prompt-gateway-marker\x00"

// ParseTemplate parses a system prompt and checks that rendering it emits the
// prompt verbatim exactly once.
func ParseTemplate(text string) (*template.Template, error) {
	tmpl, err := template.New("system_prompt").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse system prompt template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, promptData{Prompt: promptMarker}); err != nil {
		return nil, fmt.Errorf("failed to render system prompt template: %w", err)
	}
	if n := strings.Count(sb.String(), promptMarker); n != 1 {
		return nil, fmt.Errorf("system prompt template must emit the prompt exactly once, got %d", n)
	}
	return tmpl, nil
}

func (g *Gateway) Model() string {
	return g.model
}

// BuildPrompt returns the text actually sent to the backend.
func (g *Gateway) BuildPrompt(prompt string) (string, error) {
	if g.template == nil {
		return prompt, nil
	}

	var sb strings.Builder
	if err := g.template.Execute(&sb, promptData{Prompt: prompt}); err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}
	return sb.String(), nil
}

// Handle returns the backend's text, or FallbackResponse if anything on the
// way fails. The cause is deliberately not logged or returned.
func (g *Gateway) Handle(ctx context.Context, prompt string) string {
	content, err := g.generate(ctx, prompt)
	if err != nil {
		g.logger.Warn().Str("model", g.model).Msg("generation failed, returning fallback response")
		return models.FallbackResponse
	}
	return content
}

func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	finalPrompt, err := g.BuildPrompt(prompt)
	if err != nil {
		return "", err
	}

	response, err := g.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Model:   g.model,
		Prompt:  finalPrompt,
		Options: g.generation,
	})
	if err != nil {
		return "", err
	}
	if response == nil {
		return "", fmt.Errorf("empty response from backend")
	}
	return response.Content, nil
}
