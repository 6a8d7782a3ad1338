package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/dashboard"
	"github.com/status-im/crypto-insight-hub/interfaces"
	mock_interfaces "github.com/status-im/crypto-insight-hub/interfaces/mocks"
	"github.com/status-im/crypto-insight-hub/jobs"
)

type testEnv struct {
	server      *httptest.Server
	markets     *mock_interfaces.MockIMarketsService
	marketChart *mock_interfaces.MockIMarketChartService
	insights    *mock_interfaces.MockIInsightsService
	runner      *jobs.Runner
}

type healthStub bool

func (h healthStub) Healthy() bool { return bool(h) }

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		markets:     mock_interfaces.NewMockIMarketsService(ctrl),
		marketChart: mock_interfaces.NewMockIMarketChartService(ctrl),
		insights:    mock_interfaces.NewMockIInsightsService(ctrl),
	}

	cfg := config.Default()
	env.runner = jobs.NewRunner(cfg.Jobs)
	require.NoError(t, env.runner.Start(context.Background()))

	dashboardService := dashboard.NewService(env.markets, env.marketChart, env.insights)
	server := New(cfg, dashboardService, env.runner, map[string]HealthChecker{
		"coingecko_markets": healthStub(true),
		"together_insights": healthStub(false),
	})
	env.server = httptest.NewServer(server.Router())

	t.Cleanup(func() {
		env.server.Close()
		env.runner.Stop()
	})
	return env
}

func (env *testEnv) expectCompare(ids []string) {
	env.markets.EXPECT().Snapshots(gomock.Any(), ids).Return([]interfaces.MarketSnapshot{
		{ID: "bitcoin", Name: "Bitcoin", CurrentPrice: decimal.RequireFromString("65000.5"), PriceChangePct24h: decimal.RequireFromString("2.5")},
		{ID: "ethereum", Name: "Ethereum", CurrentPrice: decimal.RequireFromString("3500"), PriceChangePct24h: decimal.RequireFromString("-1")},
	}, nil).AnyTimes()
	env.marketChart.EXPECT().Histories(gomock.Any(), ids).Return([]interfaces.PriceSeries{
		{CoinID: "bitcoin", Points: []interfaces.PricePoint{{Timestamp: time.Unix(1700000000, 0).UTC(), Price: decimal.NewFromInt(65000)}}},
	}, []interfaces.SeriesWarning{
		{CoinID: "ethereum", Kind: interfaces.FailureEmpty, Message: "Error fetching price history for ethereum: no price history returned"},
	}).AnyTimes()
}

func (env *testEnv) get(t *testing.T, path string) *http.Response {
	resp, err := http.Get(env.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (env *testEnv) post(t *testing.T, path string) *http.Response {
	resp, err := http.Post(env.server.URL+path, "application/json", nil)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
