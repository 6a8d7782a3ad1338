package coingecko_markets

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	cg "github.com/status-im/crypto-insight-hub/coingecko_common"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

// maxWholeAmount is the largest market cap or volume a snapshot can hold
var maxWholeAmount = decimal.NewFromInt(math.MaxInt64)

// marketRecord is the subset of a /coins/markets element the dashboard uses.
// JSON nulls decode as zero.
type marketRecord struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	CurrentPrice             decimal.Decimal `json:"current_price"`
	PriceChangePercentage24h decimal.Decimal `json:"price_change_percentage_24h"`
	MarketCap                decimal.Decimal `json:"market_cap"`
	TotalVolume              decimal.Decimal `json:"total_volume"`
	CirculatingSupply        decimal.Decimal `json:"circulating_supply"`
}

// parseSnapshot projects a raw markets record into a MarketSnapshot
func parseSnapshot(raw []byte) (interfaces.MarketSnapshot, error) {
	var record marketRecord
	if err := cg.DecodeJSON(raw, &record); err != nil {
		return interfaces.MarketSnapshot{}, err
	}

	if record.Name == "" {
		return interfaces.MarketSnapshot{}, malformed("record %q has no name", record.ID)
	}

	for field, value := range map[string]decimal.Decimal{
		"current_price":      record.CurrentPrice,
		"market_cap":         record.MarketCap,
		"total_volume":       record.TotalVolume,
		"circulating_supply": record.CirculatingSupply,
	} {
		if value.IsNegative() {
			return interfaces.MarketSnapshot{}, malformed("record %q has negative %s %s", record.ID, field, value)
		}
	}

	for field, value := range map[string]decimal.Decimal{
		"market_cap":   record.MarketCap,
		"total_volume": record.TotalVolume,
	} {
		if value.Round(0).GreaterThan(maxWholeAmount) {
			return interfaces.MarketSnapshot{}, malformed("record %q has out of range %s %s", record.ID, field, value)
		}
	}

	return interfaces.MarketSnapshot{
		ID:                record.ID,
		Name:              record.Name,
		CurrentPrice:      record.CurrentPrice,
		PriceChangePct24h: record.PriceChangePercentage24h,
		MarketCap:         record.MarketCap.Round(0).IntPart(),
		TotalVolume:       record.TotalVolume.Round(0).IntPart(),
		CirculatingSupply: record.CirculatingSupply,
	}, nil
}

func malformed(format string, args ...interface{}) *interfaces.FetchError {
	return &interfaces.FetchError{
		Kind:    interfaces.FailureMalformed,
		Message: fmt.Sprintf(format, args...),
	}
}
