package coingecko_market_chart

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	cg "github.com/status-im/crypto-insight-hub/coingecko_common"
)

const (
	MARKET_CHART_API_PATH_TEMPLATE = "/api/v3/coins/%s/market_chart"
	// Fixed lookback window of the dashboard chart
	HISTORY_DAYS = "7"
)

type MarketChartRequestBuilder struct {
	builder *cg.CoingeckoRequestBuilder
	coinID  string
}

func NewMarketChartRequestBuilder(baseURL, coinID string) *MarketChartRequestBuilder {
	apiPath := fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, url.PathEscape(coinID))

	rb := &MarketChartRequestBuilder{
		builder: cg.NewCoingeckoRequestBuilder(baseURL, apiPath),
		coinID:  coinID,
	}

	rb.builder.WithCurrency(cg.USD_CURRENCY)
	rb.WithDays(HISTORY_DAYS)

	return rb
}

func (rb *MarketChartRequestBuilder) WithDays(days string) *MarketChartRequestBuilder {
	if days != "" {
		rb.builder.With("days", days)
	}
	return rb
}

func (rb *MarketChartRequestBuilder) WithCurrency(currency string) *MarketChartRequestBuilder {
	rb.builder.WithCurrency(currency)
	return rb
}

func (rb *MarketChartRequestBuilder) WithUserAgent(userAgent string) *MarketChartRequestBuilder {
	rb.builder.WithUserAgent(userAgent)
	return rb
}

func (rb *MarketChartRequestBuilder) BuildURL() string {
	return rb.builder.BuildURL()
}

func (rb *MarketChartRequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	return rb.builder.Build(ctx)
}
