package coingecko_markets

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	cg "github.com/status-im/crypto-insight-hub/coingecko_common"
	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/metrics"
)

//go:generate mockgen -destination=mocks/api_client.go . APIClient

// APIClient defines interface for API operations
type APIClient interface {
	// FetchMarkets fetches the markets page for the given ids and returns the raw records
	FetchMarkets(ctx context.Context, ids []string) ([][]byte, error)
	// Healthy reports whether at least one fetch succeeded
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config          *config.Config
	httpClient      *cg.HTTPClient
	successfulFetch atomic.Bool // Flag indicating if at least one fetch was successful
}

// NewCoinGeckoClient creates a new CoinGecko API client
func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	opts := cg.ClientOptionsFromConfig(cfg, "CoinGecko-Markets")
	metricsWriter := cg.NewHttpRequestMetricsWriter(metrics.ServiceMarkets)

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClient(opts, metricsWriter),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchMarkets issues exactly one markets request
func (c *CoinGeckoClient) FetchMarkets(ctx context.Context, ids []string) ([][]byte, error) {
	requestBuilder := NewMarketRequestBuilder(cg.GetApiBaseUrl(c.config)).WithIDs(ids)
	requestBuilder.WithUserAgent(c.config.CoingeckoMarkets.UserAgent)

	request, err := requestBuilder.Build(ctx)
	if err != nil {
		log.Printf("CoinGecko-Markets: Error building request: %v", err)
		return nil, err
	}

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}

	// Parse the response as array of RawMessage
	var rawData []json.RawMessage
	if err := cg.DecodeJSON(body, &rawData); err != nil {
		log.Printf("CoinGecko-Markets: Error parsing JSON response: %v", err)
		return nil, err
	}

	records := make([][]byte, 0, len(rawData))
	for _, record := range rawData {
		records = append(records, []byte(record))
	}

	log.Printf("CoinGecko-Markets: Fetched %d records for %d ids in %.2fs", len(records), len(ids), duration.Seconds())

	c.successfulFetch.Store(true)

	return records, nil
}
