package config

import "github.com/povarna/generative-ai-agents/prompt-gateway/internal/models"

// GatewayConfig is the deployment-time description of what the gateway sends
// to the backend.
type GatewayConfig struct {
	Model        string                   `yaml:"model"`
	SystemPrompt string                   `yaml:"system_prompt"`
	Generation   *models.GenerationConfig `yaml:"generation"`
}
