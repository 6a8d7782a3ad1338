package coingecko_market_chart

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	cg "github.com/status-im/crypto-insight-hub/coingecko_common"
	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/metrics"
)

// APIClient fetches raw market_chart documents
type APIClient interface {
	// FetchMarketChart returns the top-level members of the response keyed by name
	FetchMarketChart(ctx context.Context, params MarketChartParams) (map[string][]byte, error)
	Healthy() bool
}

type CoinGeckoClient struct {
	config          *config.Config
	httpClient      *cg.HTTPClient
	successfulFetch atomic.Bool
}

func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	opts := cg.ClientOptionsFromConfig(cfg, "CoinGecko-MarketChart")
	metricsWriter := cg.NewHttpRequestMetricsWriter(metrics.ServiceMarketChart)

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClient(opts, metricsWriter),
	}
}

func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

func (c *CoinGeckoClient) FetchMarketChart(ctx context.Context, params MarketChartParams) (map[string][]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, malformed("%v", err)
	}

	requestBuilder := NewMarketChartRequestBuilder(cg.GetApiBaseUrl(c.config), params.ID).
		WithDays(params.Days).
		WithCurrency(params.Currency).
		WithUserAgent(c.config.CoingeckoMarkets.UserAgent)

	request, err := requestBuilder.Build(ctx)
	if err != nil {
		log.Printf("CoinGecko-MarketChart: Error building request for %s: %v", params.ID, err)
		return nil, err
	}

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}

	var rawChart map[string]json.RawMessage
	if err := cg.DecodeJSON(body, &rawChart); err != nil {
		log.Printf("CoinGecko-MarketChart: Error parsing JSON response: %v", err)
		return nil, err
	}

	result := make(map[string][]byte, len(rawChart))
	for key, value := range rawChart {
		result[key] = []byte(value)
	}

	log.Printf("CoinGecko-MarketChart: Successfully fetched market chart for coin %s in %.2fs",
		params.ID, duration.Seconds())

	c.successfulFetch.Store(true)

	return result, nil
}
