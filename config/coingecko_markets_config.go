package config

import (
	"time"
)

// CoingeckoMarketsFetcher defines HTTP settings shared by the CoinGecko fetchers
type CoingeckoMarketsFetcher struct {
	RequestTimeout    time.Duration `yaml:"request_timeout"`    // Total request timeout including reading response
	ConnectionTimeout time.Duration `yaml:"connection_timeout"` // Timeout for establishing connection
	UserAgent         string        `yaml:"user_agent"`
}

func (c *CoingeckoMarketsFetcher) applyDefaults() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.ConnectionTimeout <= 0 {
		c.ConnectionTimeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 Crypto-Insight-Hub"
	}
}
