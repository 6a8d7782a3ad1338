package config

import (
	"fmt"
	"time"
)

const (
	// APIVariantChat uses the chat completions endpoint with a message list
	APIVariantChat = "chat"
	// APIVariantCompletion uses the raw completions endpoint with a prompt string
	APIVariantCompletion = "completion"

	// DefaultTemperature applies when together_insights.temperature is absent. An explicit 0 is kept.
	DefaultTemperature = 0.7
)

// TogetherInsightsConfig configures the LLM insight fetcher
type TogetherInsightsConfig struct {
	APIVariant     string        `yaml:"api_variant"`
	Model          string        `yaml:"model"`
	Temperature    float64       `yaml:"temperature"`
	MaxTokens      int           `yaml:"max_tokens"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// GetDefaultTogetherInsightsConfig returns the default LLM settings
func GetDefaultTogetherInsightsConfig() TogetherInsightsConfig {
	return TogetherInsightsConfig{
		APIVariant:     APIVariantChat,
		Model:          "meta-llama/Meta-Llama-3.1-70B-Instruct-Turbo",
		Temperature:    DefaultTemperature,
		MaxTokens:      512,
		RequestTimeout: 120 * time.Second,
	}
}

func (c *TogetherInsightsConfig) applyDefaults() {
	defaults := GetDefaultTogetherInsightsConfig()
	if c.APIVariant == "" {
		c.APIVariant = defaults.APIVariant
	}
	if c.Model == "" {
		c.Model = defaults.Model
	}
	if c.MaxTokens == 0 {
		if c.APIVariant == APIVariantCompletion {
			c.MaxTokens = 100
		} else {
			c.MaxTokens = defaults.MaxTokens
		}
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaults.RequestTimeout
	}
}

// Validate validates the TogetherInsightsConfig configuration
func (c *TogetherInsightsConfig) Validate() error {
	if c.APIVariant != APIVariantChat && c.APIVariant != APIVariantCompletion {
		return fmt.Errorf("api_variant must be '%s' or '%s', got '%s'", APIVariantChat, APIVariantCompletion, c.APIVariant)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must not be negative, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2], got %.2f", c.Temperature)
	}
	return nil
}
