package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/coingecko_market_chart.go . IMarketChartService

// IMarketChartService defines the interface for the price history fetcher
type IMarketChartService interface {
	// History fetches the 7-day USD price series of a single coin
	History(ctx context.Context, id string) (PriceSeries, error)

	// Histories fetches series for every id. A failed id never aborts the others:
	// it is reported as exactly one warning and omitted from the returned series.
	// Series are returned in the order of ids.
	Histories(ctx context.Context, ids []string) ([]PriceSeries, []SeriesWarning)
}

// PricePoint is a single price sample
type PricePoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
}

// PriceSeries is an ordered sequence of price samples for one coin
type PriceSeries struct {
	CoinID string       `json:"coin_id"`
	Points []PricePoint `json:"points"`
}

// SeriesWarning reports a coin whose history could not be produced
type SeriesWarning struct {
	CoinID  string      `json:"coin_id"`
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}
