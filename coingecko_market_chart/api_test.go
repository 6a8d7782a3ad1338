package coingecko_market_chart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig(serverURL string) *config.Config {
	cfg := config.Default()
	cfg.OverrideCoingeckoPublicURL = serverURL
	return cfg
}

func TestMarketChartRequestBuilder(t *testing.T) {
	builder := NewMarketChartRequestBuilder("https://api.coingecko.com/", "bitcoin")

	assert.Equal(t, "https://api.coingecko.com/api/v3/coins/bitcoin/market_chart?days=7&vs_currency=usd", builder.BuildURL())

	request, err := builder.WithUserAgent("test-agent").Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, request.Method)
	assert.Equal(t, "test-agent", request.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", request.Header.Get("Accept"))
}

func TestCoinGeckoClient_FetchMarketChart(t *testing.T) {
	var receivedPath, receivedDays, receivedCurrency string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		receivedDays = r.URL.Query().Get("days")
		receivedCurrency = r.URL.Query().Get("vs_currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"prices": [[1643723400000, 38000.0], [1643809800000, 39000.0]],
			"market_caps": [[1643723400000, 750000000000.0]],
			"total_volumes": [[1643723400000, 25000000000.0]]
		}`))
	}))
	defer server.Close()

	client := NewCoinGeckoClient(createTestConfig(server.URL))
	assert.False(t, client.Healthy())

	result, err := client.FetchMarketChart(context.Background(), NewHistoryParams("bitcoin"))

	require.NoError(t, err)
	assert.Equal(t, "/api/v3/coins/bitcoin/market_chart", receivedPath)
	assert.Equal(t, "7", receivedDays)
	assert.Equal(t, "usd", receivedCurrency)
	assert.Contains(t, result, "prices")
	assert.Contains(t, result, "market_caps")
	assert.Contains(t, result, "total_volumes")
	assert.True(t, client.Healthy())
}

func TestCoinGeckoClient_FetchMarketChart_Errors(t *testing.T) {
	tests := []struct {
		name         string
		params       MarketChartParams
		status       int
		body         string
		expectedKind interfaces.FailureKind
	}{
		{
			name:         "coin not found",
			params:       NewHistoryParams("not-a-coin"),
			status:       http.StatusNotFound,
			body:         `{"error":"coin not found"}`,
			expectedKind: interfaces.FailureStatus,
		},
		{
			name:         "rate limited",
			params:       NewHistoryParams("bitcoin"),
			status:       http.StatusTooManyRequests,
			body:         `{"status":{"error_code":429}}`,
			expectedKind: interfaces.FailureStatus,
		},
		{
			name:         "array instead of object",
			params:       NewHistoryParams("bitcoin"),
			status:       http.StatusOK,
			body:         `[1, 2, 3]`,
			expectedKind: interfaces.FailureMalformed,
		},
		{
			name:         "empty coin id",
			params:       NewHistoryParams(" "),
			status:       http.StatusOK,
			body:         `{}`,
			expectedKind: interfaces.FailureMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewCoinGeckoClient(createTestConfig(server.URL))
			result, err := client.FetchMarketChart(context.Background(), tt.params)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.expectedKind, interfaces.KindOf(err))
			assert.False(t, client.Healthy())
		})
	}
}

func TestCoinGeckoClient_FetchMarketChart_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewCoinGeckoClient(createTestConfig(serverURL))
	_, err := client.FetchMarketChart(context.Background(), NewHistoryParams("bitcoin"))

	require.Error(t, err)
	assert.Equal(t, interfaces.FailureTransport, interfaces.KindOf(err))
}
