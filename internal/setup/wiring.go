package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/config"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/gateway"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/llm/ollama"
	"github.com/rs/zerolog"
)

const DefaultListenAddr = "127.0.0.1:14434"

type Config struct {
	ListenAddr    string
	LogLevel      string
	Provider      string
	Model         string
	OllamaHost    string
	AWSRegion     string
	OpenAIKey     string
	OpenAIBaseURL string
}

type Dependencies struct {
	Gateway *gateway.Gateway
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		ListenAddr:    getEnv("GATEWAY_LISTEN_ADDR", DefaultListenAddr),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Provider:      getEnv("LLM_PROVIDER", "ollama"),
		Model:         getEnv("GATEWAY_MODEL", ""),
		OllamaHost:    getEnv("OLLAMA_HOST", ollama.DefaultHost),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		OpenAIBaseURL: getEnv("OPEN_AI_BASE_URL", ""),
	}
}

// Wire builds the single gateway instance shared by every request.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	gatewayConfig, err := config.LoadGatewayConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gateway config: %w", err)
	}
	if cfg.Model != "" {
		gatewayConfig.Model = cfg.Model
	}

	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	gw, err := gateway.New(llmClient, gateway.Options{
		Model:        gatewayConfig.Model,
		SystemPrompt: gatewayConfig.SystemPrompt,
		Generation:   gatewayConfig.Generation,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Str("model", gatewayConfig.Model).
		Bool("system_prompt", gatewayConfig.SystemPrompt != "").
		Bool("generation_config", gatewayConfig.Generation != nil).
		Msg("Gateway initialized")

	return &Dependencies{
		Gateway: gw,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case "ollama", "":
		return ollama.NewClient(cfg.OllamaHost)
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
