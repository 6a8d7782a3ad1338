package coingecko_common

import (
	"encoding/json"
	"log"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

// GetApiBaseUrl returns the CoinGecko API base URL, honouring the config override
func GetApiBaseUrl(cfg *config.Config) string {
	if cfg != nil && cfg.OverrideCoingeckoPublicURL != "" {
		log.Printf("CoinGecko: Using overridden public API URL: %s", cfg.OverrideCoingeckoPublicURL)
		return cfg.OverrideCoingeckoPublicURL
	}
	return COINGECKO_PUBLIC_URL
}

// DecodeJSON unmarshals body into v, reporting failures as malformed responses
func DecodeJSON(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &interfaces.FetchError{
			Kind:    interfaces.FailureMalformed,
			Message: "unexpected response format: " + err.Error(),
			Err:     err,
		}
	}
	return nil
}
