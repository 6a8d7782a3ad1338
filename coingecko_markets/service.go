package coingecko_markets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

const opFetchMarkets = "fetching market data"

// Service fetches market snapshots. It holds no per-request state.
type Service struct {
	config    *config.Config
	apiClient APIClient
}

// NewService creates a new markets service
func NewService(cfg *config.Config) *Service {
	return NewServiceWithClient(cfg, NewCoinGeckoClient(cfg))
}

// NewServiceWithClient creates a markets service on top of the given API client
func NewServiceWithClient(cfg *config.Config, apiClient APIClient) *Service {
	return &Service{
		config:    cfg,
		apiClient: apiClient,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.apiClient == nil {
		return fmt.Errorf("api client not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	if s.apiClient != nil {
		return s.apiClient.Healthy()
	}
	return false
}

// Snapshots implements interfaces.IMarketsService.
// The result keeps CoinGecko's market cap descending order rather than the order of ids.
func (s *Service) Snapshots(ctx context.Context, ids []string) ([]interfaces.MarketSnapshot, error) {
	if len(ids) == 0 {
		return nil, interfaces.NewFetchError(opFetchMarkets, interfaces.FailureEmpty, "no coin identifiers requested")
	}

	log.Printf("Loading market data for %d coins: %s", len(ids), strings.Join(ids, ","))

	records, err := s.apiClient.FetchMarkets(ctx, ids)
	if err != nil {
		log.Printf("apiClient.FetchMarkets failed: %v", err)
		return nil, interfaces.WithOp(err, opFetchMarkets)
	}

	snapshots := make([]interfaces.MarketSnapshot, 0, len(records))
	for i, record := range records {
		snapshot, err := parseSnapshot(record)
		if err != nil {
			log.Printf("CoinGecko-Markets: Invalid record at index %d: %v", i, err)
			return nil, interfaces.WithOp(err, opFetchMarkets)
		}
		snapshots = append(snapshots, snapshot)
	}

	if len(snapshots) == 0 {
		return nil, interfaces.NewFetchError(opFetchMarkets, interfaces.FailureEmpty,
			"no market data found for: %s", strings.Join(ids, ", "))
	}

	return snapshots, nil
}
