package config

// CoingeckoMarketChartFetcher defines configuration for the price history fetcher
type CoingeckoMarketChartFetcher struct {
	// HistoryConcurrency bounds how many coins are fetched in parallel.
	// 1 fetches strictly one coin after another.
	HistoryConcurrency int `yaml:"history_concurrency"`
}

// GetDefaultMarketChartConfig returns default configuration for market chart service
func GetDefaultMarketChartConfig() CoingeckoMarketChartFetcher {
	return CoingeckoMarketChartFetcher{
		HistoryConcurrency: 4,
	}
}

func (c *CoingeckoMarketChartFetcher) applyDefaults() {
	if c.HistoryConcurrency == 0 {
		c.HistoryConcurrency = GetDefaultMarketChartConfig().HistoryConcurrency
	}
}
