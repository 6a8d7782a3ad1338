package coingecko_markets

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketsRequestBuilder_SpecificBehavior(t *testing.T) {
	baseURL := "https://api.coingecko.com"

	tests := []struct {
		name          string
		configuration func(*MarketsRequestBuilder)
		checkURL      func(*testing.T, url.Values)
	}{
		{
			name:          "Default market parameters",
			configuration: func(rb *MarketsRequestBuilder) {},
			checkURL: func(t *testing.T, query url.Values) {
				assert.Equal(t, "usd", query.Get("vs_currency"))
				assert.Equal(t, "market_cap_desc", query.Get("order"))
				assert.Equal(t, "1", query.Get("page"))
				assert.Equal(t, "100", query.Get("per_page"))
				assert.Equal(t, "false", query.Get("sparkline"))
				assert.False(t, query.Has("ids"))
			},
		},
		{
			name: "With ids",
			configuration: func(rb *MarketsRequestBuilder) {
				rb.WithIDs([]string{"bitcoin", "ethereum", "dogecoin"})
			},
			checkURL: func(t *testing.T, query url.Values) {
				assert.Equal(t, "bitcoin,ethereum,dogecoin", query.Get("ids"))
			},
		},
		{
			name: "Empty ids are not sent",
			configuration: func(rb *MarketsRequestBuilder) {
				rb.WithIDs(nil)
			},
			checkURL: func(t *testing.T, query url.Values) {
				assert.False(t, query.Has("ids"))
			},
		},
		{
			name: "Empty order keeps default",
			configuration: func(rb *MarketsRequestBuilder) {
				rb.WithOrder("")
			},
			checkURL: func(t *testing.T, query url.Values) {
				assert.Equal(t, "market_cap_desc", query.Get("order"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewMarketRequestBuilder(baseURL)
			tt.configuration(rb)

			urlStr := rb.BuildURL()
			assert.True(t, strings.HasPrefix(urlStr, baseURL+MARKETS_API_PATH), urlStr)

			parsedURL, err := url.Parse(urlStr)
			require.NoError(t, err)
			tt.checkURL(t, parsedURL.Query())
		})
	}
}
