package coingecko_market_chart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	cg "github.com/status-im/crypto-insight-hub/coingecko_common"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

// MarketChartParams represents parameters for market chart requests
type MarketChartParams struct {
	// ID is the coin id (required)
	ID string `json:"id"`

	// Currency to compare against, always "usd" for the dashboard
	Currency string `json:"vs_currency"`

	// Days is the lookback window in days
	Days string `json:"days"`
}

// NewHistoryParams returns the fixed 7-day USD parameters for a coin
func NewHistoryParams(id string) MarketChartParams {
	return MarketChartParams{
		ID:       id,
		Currency: cg.USD_CURRENCY,
		Days:     HISTORY_DAYS,
	}
}

// Validate validates the MarketChartParams
func (p *MarketChartParams) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("coin ID is required")
	}
	if strings.ContainsAny(p.ID, "/?#") {
		return fmt.Errorf("%w %q", interfaces.ErrInvalidCoinID, p.ID)
	}
	return nil
}

// MarketChartData represents a single data point [timestamp, value]
type MarketChartData []decimal.Decimal

// parsePricePoints maps the "prices" array of a market_chart response to price points.
// Every element must be a [timestampMillis, price] pair with a positive timestamp and a non-negative price.
func parsePricePoints(raw []byte) ([]interfaces.PricePoint, error) {
	var pairs []MarketChartData
	if err := cg.DecodeJSON(raw, &pairs); err != nil {
		return nil, err
	}

	points := make([]interfaces.PricePoint, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, malformed("price sample %d has %d elements, expected [timestamp, price]", i, len(pair))
		}

		millis := pair[0].IntPart()
		if millis <= 0 {
			return nil, malformed("price sample %d has invalid timestamp %s", i, pair[0])
		}
		if pair[1].IsNegative() {
			return nil, malformed("price sample %d has negative price %s", i, pair[1])
		}

		points = append(points, interfaces.PricePoint{
			Timestamp: time.UnixMilli(millis).UTC(),
			Price:     pair[1],
		})
	}

	return points, nil
}

// pricesField extracts the "prices" member of a market_chart response
func pricesField(data map[string][]byte) ([]byte, error) {
	raw, ok := data["prices"]
	if !ok {
		return nil, malformed("response has no \"prices\" field")
	}
	if string(raw) == "null" {
		return nil, malformed("response field \"prices\" is null")
	}
	return raw, nil
}

func malformed(format string, args ...interface{}) *interfaces.FetchError {
	return &interfaces.FetchError{
		Kind:    interfaces.FailureMalformed,
		Message: fmt.Sprintf(format, args...),
	}
}
