package config

import "time"

// DashboardConfig configures the user-facing dashboard
type DashboardConfig struct {
	// DefaultCoins pre-fills the coin list field
	DefaultCoins string `yaml:"default_coins"`
}

func (c *DashboardConfig) applyDefaults() {
	if c.DefaultCoins == "" {
		c.DefaultCoins = "bitcoin,ethereum"
	}
}

// JobsConfig configures the asynchronous job store
type JobsConfig struct {
	TTL             time.Duration `yaml:"ttl"`              // How long finished jobs stay available
	CleanupInterval time.Duration `yaml:"cleanup_interval"` // How often expired jobs are purged
	MetricsInterval time.Duration `yaml:"metrics_interval"` // How often the job store size is recorded
}

func (c *JobsConfig) applyDefaults() {
	if c.TTL <= 0 {
		c.TTL = 10 * time.Minute
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = time.Minute
	}
	if c.MetricsInterval <= 0 {
		c.MetricsInterval = 30 * time.Second
	}
}
