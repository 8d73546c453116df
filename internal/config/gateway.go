package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/prompt-gateway/internal/gateway"
	"go.yaml.in/yaml/v3"
)

const (
	DefaultConfigPath = "configs/gateway.yaml"
	DefaultModel      = "llama3.1:latest"
)

// Default is the plain forwarding setup: no template, backend sampling defaults.
func Default() *GatewayConfig {
	return &GatewayConfig{
		Model: DefaultModel,
	}
}

// LoadGatewayConfig reads the file named by GATEWAY_CONFIG_PATH. When the
// variable is unset and the default file does not exist, Default is returned.
func LoadGatewayConfig() (*GatewayConfig, error) {
	path := os.Getenv("GATEWAY_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg GatewayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *GatewayConfig) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
}

func (c *GatewayConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("missing model")
	}

	if c.SystemPrompt != "" {
		if err := validateSystemPrompt(c.SystemPrompt); err != nil {
			return err
		}
	}

	if g := c.Generation; g != nil {
		if g.Temperature != nil && *g.Temperature < 0 {
			return fmt.Errorf("invalid temperature %v: must be >= 0", *g.Temperature)
		}
		if g.RepeatPenalty != nil && *g.RepeatPenalty < 0 {
			return fmt.Errorf("invalid repeat_penalty %v: must be >= 0", *g.RepeatPenalty)
		}
		if g.TopK != nil && *g.TopK < 0 {
			return fmt.Errorf("invalid top_k %d: must be >= 0", *g.TopK)
		}
		if g.TopP != nil && (*g.TopP < 0 || *g.TopP > 1) {
			return fmt.Errorf("invalid top_p %v: must be within [0, 1]", *g.TopP)
		}
	}

	return nil
}

func validateSystemPrompt(text string) error {
	if _, err := gateway.ParseTemplate(text); err != nil {
		return fmt.Errorf("invalid prompt template: %w", err)
	}
	return nil
}
