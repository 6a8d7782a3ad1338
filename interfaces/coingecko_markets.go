package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/coingecko_markets.go . IMarketsService

// IMarketsService defines the interface for the market snapshot fetcher
type IMarketsService interface {
	// Snapshots fetches current market data for the given coin ids.
	// Results follow the provider order (market cap descending), not the order of ids.
	// Ids without a provider record produce no snapshot.
	Snapshots(ctx context.Context, ids []string) ([]MarketSnapshot, error)
}

// MarketSnapshot is a point-in-time market record for one coin
type MarketSnapshot struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	CurrentPrice      decimal.Decimal `json:"current_price"`
	PriceChangePct24h decimal.Decimal `json:"price_change_percentage_24h"`
	MarketCap         int64           `json:"market_cap"`
	TotalVolume       int64           `json:"total_volume"`
	CirculatingSupply decimal.Decimal `json:"circulating_supply"`
}
