package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/crypto-insight-hub/config"
)

// createTestConfig creates a test configuration and returns the path to the file
func createTestConfig(mockURL string) (string, error) {
	// Create a temporary directory for configuration
	tempDir, err := os.MkdirTemp("", "crypto-insight-hub-test")
	if err != nil {
		return "", err
	}

	// Create configuration file content
	configContent := `
server:
  port: "8081"

env_file: "%s"              # env file inside the temp dir

coingecko_markets:
  request_timeout: 5s       # short timeouts for tests
  connection_timeout: 2s

coingecko_market_chart:
  history_concurrency: 2

together_insights:
  api_variant: chat
  model: "test-model"
  request_timeout: 5s

dashboard:
  default_coins: "bitcoin,ethereum"

jobs:
  ttl: 1m
  cleanup_interval: 1m
  metrics_interval: 1s

# URLs for API (mock)
override_coingecko_public_url: "%s"  # URL for CoinGecko public API
override_together_url: "%s"          # URL for Together AI API
`

	// Create env file with the Together API key
	envFilePath := filepath.Join(tempDir, ".env")
	if err := os.WriteFile(envFilePath, []byte("TOGETHER_API_KEY="+testAPIKey+"\n"), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	// Insert values into configuration
	configContent = fmt.Sprintf(configContent, envFilePath, mockURL, mockURL)

	// Create configuration file
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(mockURL string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.RemoveAll(filepath.Dir(configPath))
		return nil, "", err
	}

	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary directory with configuration
func cleanupTestConfig(configPath string) {
	os.RemoveAll(filepath.Dir(configPath))
}
