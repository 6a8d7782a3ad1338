package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// TogetherAPIKeyEnv is the environment variable holding the Together AI API key
	TogetherAPIKeyEnv = "TOGETHER_API_KEY"
	// PortEnv overrides server.port
	PortEnv = "PORT"
)

type Config struct {
	Server               ServerConfig                `yaml:"server"`
	EnvFile              string                      `yaml:"env_file"`
	CoingeckoMarkets     CoingeckoMarketsFetcher     `yaml:"coingecko_markets"`
	CoingeckoMarketChart CoingeckoMarketChartFetcher `yaml:"coingecko_market_chart"`
	TogetherInsights     TogetherInsightsConfig      `yaml:"together_insights"`
	Dashboard            DashboardConfig             `yaml:"dashboard"`
	Jobs                 JobsConfig                  `yaml:"jobs"`

	OverrideCoingeckoPublicURL string `yaml:"override_coingecko_public_url"`
	OverrideTogetherURL        string `yaml:"override_together_url"`

	// TogetherAPIKey is read from the environment only, never from the YAML file
	TogetherAPIKey string `yaml:"-"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string `yaml:"port"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := newConfig()
	cfg.applyDefaults()
	return &cfg
}

// newConfig presets the defaults whose zero value is a valid setting, so that
// YAML decoding only replaces them when the key is present
func newConfig() Config {
	return Config{
		TogetherInsights: TogetherInsightsConfig{Temperature: DefaultTemperature},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := newConfig()
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	config.applyDefaults()
	config.loadEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

// Validate checks every section of the configuration
func (c *Config) Validate() error {
	if err := c.TogetherInsights.Validate(); err != nil {
		return fmt.Errorf("together_insights: %w", err)
	}
	if c.CoingeckoMarketChart.HistoryConcurrency < 1 {
		return fmt.Errorf("coingecko_market_chart: history_concurrency must be at least 1, got %d",
			c.CoingeckoMarketChart.HistoryConcurrency)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.EnvFile == "" {
		c.EnvFile = ".env"
	}
	c.CoingeckoMarkets.applyDefaults()
	c.CoingeckoMarketChart.applyDefaults()
	c.TogetherInsights.applyDefaults()
	c.Dashboard.applyDefaults()
	c.Jobs.applyDefaults()
}

// loadEnv reads secrets from the .env file (if present) and the process environment.
// The API key is not validated here: a missing key surfaces as an upstream authentication failure.
func (c *Config) loadEnv() {
	if err := godotenv.Load(c.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Error loading env file %s: %v", c.EnvFile, err)
	}

	c.TogetherAPIKey = os.Getenv(TogetherAPIKeyEnv)
	if c.TogetherAPIKey == "" {
		log.Printf("Warning: %s is not set, insight requests will be rejected by the provider", TogetherAPIKeyEnv)
	}

	if port := os.Getenv(PortEnv); port != "" {
		c.Server.Port = port
	}
}
