package api

import (
	"context"
	"html"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/crypto-insight-hub/interfaces"
)

func readBody(t *testing.T, resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// html/template escapes "+" as &#43;
	return html.UnescapeString(string(body))
}

func TestHandleIndex_EmptyForm(t *testing.T) {
	env := newTestEnv(t)

	// No fetcher expectations: the first page load must not reach upstream
	resp := env.get(t, "/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	body := readBody(t, resp)
	assert.Contains(t, body, `value="bitcoin,ethereum"`)
	assert.NotContains(t, body, `id="comparison"`)
	assert.NotContains(t, body, `id="dashboard-error"`)
}

func TestHandleIndex_Comparison(t *testing.T) {
	env := newTestEnv(t)
	env.expectCompare([]string{"bitcoin", "ethereum"})

	resp := env.get(t, "/?coins=bitcoin,ethereum")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, `value="bitcoin,ethereum"`)
	assert.Contains(t, body, `<td class="green">+2.50%</td>`)
	assert.Contains(t, body, `<td class="red">-1.00%</td>`)
	assert.Contains(t, body, `data-coin="bitcoin"`)
	assert.Contains(t, body, "Get Insights")
	assert.Contains(t, body, "Cryptocurrency Price History (Last 7 Days)")
	assert.Contains(t, body, "Error fetching price history for ethereum")
	assert.NotContains(t, body, `id="insight"`)
}

func TestHandleIndex_ZeroChangeIsRed(t *testing.T) {
	env := newTestEnv(t)
	env.markets.EXPECT().Snapshots(gomock.Any(), []string{"tether"}).Return([]interfaces.MarketSnapshot{
		{ID: "tether", Name: "Tether", CurrentPrice: decimal.NewFromInt(1), PriceChangePct24h: decimal.Zero},
	}, nil)
	env.marketChart.EXPECT().Histories(gomock.Any(), []string{"tether"}).Return(nil, nil)

	body := readBody(t, env.get(t, "/?coins=tether"))

	assert.Contains(t, body, `<td class="red">0.00%</td>`)
}

func TestHandleIndex_SnapshotFailureHidesTableAndChart(t *testing.T) {
	env := newTestEnv(t)
	env.markets.EXPECT().Snapshots(gomock.Any(), gomock.Any()).Return(nil,
		&interfaces.FetchError{Op: "fetching market data", Kind: interfaces.FailureStatus, StatusCode: 500, Message: "API request failed with status 500"})

	resp := env.get(t, "/?coins=bitcoin")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Error fetching market data: API request failed with status 500")
	assert.NotContains(t, body, `id="comparison"`)
	assert.NotContains(t, body, `id="price-chart"`)
}

func TestHandleIndex_Insight(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		err           error
		expectedClass string
	}{
		{
			name:          "generated text",
			text:          "Bitcoin is digital gold.",
			expectedClass: `class="insight" id="insight"`,
		},
		{
			name:          "failed fetch",
			err:           interfaces.NewFetchError("retrieving response", interfaces.FailureStatus, "API request failed with status 401"),
			expectedClass: `class="error" id="insight"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.expectCompare([]string{"bitcoin", "ethereum"})
			env.insights.EXPECT().Insight(gomock.Any(), "bitcoin").Return(tt.text, tt.err)

			resp := env.get(t, "/?coins=bitcoin,ethereum&insight=bitcoin")

			body := readBody(t, resp)
			assert.Contains(t, body, "Insights for Bitcoin")
			assert.Contains(t, body, tt.expectedClass)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	env := newTestEnv(t)
	release := make(chan struct{})
	defer close(release)
	env.insights.EXPECT().Insight(gomock.Any(), "bitcoin").DoAndReturn(func(ctx context.Context, coinID string) (string, error) {
		<-release
		return "", nil
	})
	require.Equal(t, http.StatusAccepted, env.post(t, "/api/v1/coins/bitcoin/insights/jobs").StatusCode)

	resp := env.get(t, "/health")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
		Jobs     map[string]int    `json:"jobs"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, map[string]string{
		"coingecko_markets": "up",
		"together_insights": "unknown",
	}, body.Services)
	assert.Equal(t, map[string]int{"stored": 1, "watchers": 0}, body.Jobs)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/metrics")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "go_goroutines")
}
