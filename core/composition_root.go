package core

import (
	"context"

	"github.com/status-im/crypto-insight-hub/api"
	"github.com/status-im/crypto-insight-hub/coingecko_market_chart"
	"github.com/status-im/crypto-insight-hub/coingecko_markets"
	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/dashboard"
	"github.com/status-im/crypto-insight-hub/jobs"
	"github.com/status-im/crypto-insight-hub/together_insights"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Create CoinGecko Markets service (comparison snapshots)
	marketsService := coingecko_markets.NewService(cfg)
	registry.Register("coingecko_markets", marketsService)

	// Create CoinGecko Market Chart service (7-day history)
	marketChartService := coingecko_market_chart.NewService(cfg)
	registry.Register("coingecko_market_chart", marketChartService)

	// Create Together AI insights service
	insightsService := together_insights.NewService(cfg)
	registry.Register("together_insights", insightsService)

	// Create dashboard pipeline on top of the three fetchers
	dashboardService := dashboard.NewService(marketsService, marketChartService, insightsService)
	registry.Register("dashboard", dashboardService)

	// Create background job runner
	jobRunner := jobs.NewRunner(cfg.Jobs)
	registry.Register("jobs", jobRunner)

	// Create HTTP server and register it as a core
	server := api.New(cfg, dashboardService, jobRunner, map[string]api.HealthChecker{
		"coingecko_markets":      marketsService,
		"coingecko_market_chart": marketChartService,
		"together_insights":      insightsService,
	})
	registry.Register("api", server)

	return registry, nil
}
