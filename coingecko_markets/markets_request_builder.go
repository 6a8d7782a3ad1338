package coingecko_markets

import (
	"strconv"
	"strings"

	cg "github.com/status-im/crypto-insight-hub/coingecko_common"
)

const (
	// Complete path for markets API endpoint
	MARKETS_API_PATH = "/api/v3/coins/markets"
	// Provider side ordering of the markets endpoint
	MARKET_CAP_DESC_ORDER = "market_cap_desc"
	// A single page holds up to this many coins
	MARKETS_PER_PAGE = 100
)

// MarketsRequestBuilder implements the Builder pattern for CoinGecko markets API requests
type MarketsRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewMarketRequestBuilder creates a new request builder for markets endpoint
// with USD pricing, market cap ordering, one page of 100 results and no sparkline
func NewMarketRequestBuilder(baseURL string) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, MARKETS_API_PATH),
	}

	rb.WithCurrency(cg.USD_CURRENCY)
	rb.WithOrder(MARKET_CAP_DESC_ORDER)
	rb.WithPage(1)
	rb.WithPerPage(MARKETS_PER_PAGE)
	rb.WithSparkline(false)

	return rb
}

// WithPage adds page parameter for pagination
func (rb *MarketsRequestBuilder) WithPage(page int) *MarketsRequestBuilder {
	rb.With("page", strconv.Itoa(page))
	return rb
}

// WithPerPage adds per_page parameter
func (rb *MarketsRequestBuilder) WithPerPage(perPage int) *MarketsRequestBuilder {
	rb.With("per_page", strconv.Itoa(perPage))
	return rb
}

// WithOrder adds ordering parameter
func (rb *MarketsRequestBuilder) WithOrder(order string) *MarketsRequestBuilder {
	if order != "" {
		rb.With("order", order)
	}
	return rb
}

// WithIDs adds ids parameter (comma-separated list of coin IDs)
func (rb *MarketsRequestBuilder) WithIDs(ids []string) *MarketsRequestBuilder {
	if len(ids) > 0 {
		rb.With("ids", strings.Join(ids, ","))
	}
	return rb
}

// WithSparkline sets the sparkline parameter
func (rb *MarketsRequestBuilder) WithSparkline(enabled bool) *MarketsRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}
