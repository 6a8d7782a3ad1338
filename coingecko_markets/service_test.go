package coingecko_markets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	mock_coingecko_markets "github.com/status-im/crypto-insight-hub/coingecko_markets/mocks"
	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Snapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_coingecko_markets.NewMockAPIClient(ctrl)
	mockClient.EXPECT().FetchMarkets(gomock.Any(), []string{"bitcoin", "ethereum"}).Return([][]byte{
		[]byte(`{"id":"bitcoin","name":"Bitcoin","current_price":65000.5,"price_change_percentage_24h":2.5,"market_cap":1280000000000.4,"total_volume":30000000000,"circulating_supply":19700000}`),
		[]byte(`{"id":"ethereum","name":"Ethereum","current_price":3500.12,"price_change_percentage_24h":-1.0,"market_cap":420000000000,"total_volume":15000000000,"circulating_supply":null}`),
	}, nil)

	service := NewServiceWithClient(config.Default(), mockClient)
	snapshots, err := service.Snapshots(context.Background(), []string{"bitcoin", "ethereum"})

	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, "bitcoin", snapshots[0].ID)
	assert.Equal(t, "Bitcoin", snapshots[0].Name)
	assert.True(t, decimal.RequireFromString("65000.5").Equal(snapshots[0].CurrentPrice))
	assert.True(t, decimal.RequireFromString("2.5").Equal(snapshots[0].PriceChangePct24h))
	assert.Equal(t, int64(1280000000000), snapshots[0].MarketCap)
	assert.Equal(t, int64(30000000000), snapshots[0].TotalVolume)

	assert.Equal(t, "Ethereum", snapshots[1].Name)
	assert.True(t, decimal.RequireFromString("-1").Equal(snapshots[1].PriceChangePct24h))
	assert.True(t, snapshots[1].CirculatingSupply.IsZero(), "null supply decodes as zero")
}

// TestService_Snapshots_ProviderOrder checks that results follow CoinGecko ordering and that
// unknown ids simply produce no row
func TestService_Snapshots_ProviderOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marketsResponse))
	}))
	defer server.Close()

	service := NewService(newTestConfig(server.URL))
	snapshots, err := service.Snapshots(context.Background(), []string{"bitcoin", "not-a-coin", "ethereum"})

	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "ethereum", snapshots[0].ID)
	assert.Equal(t, "bitcoin", snapshots[1].ID)
	assert.True(t, service.Healthy())
}

func TestService_Snapshots_Idempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marketsResponse))
	}))
	defer server.Close()

	service := NewService(newTestConfig(server.URL))
	ids := []string{"bitcoin", "ethereum"}

	first, err := service.Snapshots(context.Background(), ids)
	require.NoError(t, err)
	second, err := service.Snapshots(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Snapshots_Errors(t *testing.T) {
	tests := []struct {
		name         string
		ids          []string
		setup        func(*mock_coingecko_markets.MockAPIClient)
		expectedKind interfaces.FailureKind
	}{
		{
			name:         "empty ids skip the network",
			ids:          []string{},
			setup:        func(m *mock_coingecko_markets.MockAPIClient) {},
			expectedKind: interfaces.FailureEmpty,
		},
		{
			name: "upstream status error",
			ids:  []string{"bitcoin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return(nil, &interfaces.FetchError{
					Kind: interfaces.FailureStatus, StatusCode: 500, Message: "API request failed with status 500",
				})
			},
			expectedKind: interfaces.FailureStatus,
		},
		{
			name: "transport error",
			ids:  []string{"bitcoin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			},
			expectedKind: interfaces.FailureTransport,
		},
		{
			name: "no matching records",
			ids:  []string{"not-a-coin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return([][]byte{}, nil)
			},
			expectedKind: interfaces.FailureEmpty,
		},
		{
			name: "record without name",
			ids:  []string{"bitcoin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return([][]byte{[]byte(`{"id":"bitcoin"}`)}, nil)
			},
			expectedKind: interfaces.FailureMalformed,
		},
		{
			name: "negative price",
			ids:  []string{"bitcoin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return([][]byte{
					[]byte(`{"id":"bitcoin","name":"Bitcoin","current_price":-1}`),
				}, nil)
			},
			expectedKind: interfaces.FailureMalformed,
		},
		{
			name: "market cap beyond int64",
			ids:  []string{"bitcoin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return([][]byte{
					[]byte(`{"id":"bitcoin","name":"Bitcoin","current_price":1,"market_cap":12345678901234567890}`),
				}, nil)
			},
			expectedKind: interfaces.FailureMalformed,
		},
		{
			name: "price as object",
			ids:  []string{"bitcoin"},
			setup: func(m *mock_coingecko_markets.MockAPIClient) {
				m.EXPECT().FetchMarkets(gomock.Any(), gomock.Any()).Return([][]byte{
					[]byte(`{"id":"bitcoin","name":"Bitcoin","current_price":{"usd":1}}`),
				}, nil)
			},
			expectedKind: interfaces.FailureMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock_coingecko_markets.NewMockAPIClient(ctrl)
			tt.setup(mockClient)

			service := NewServiceWithClient(config.Default(), mockClient)
			snapshots, err := service.Snapshots(context.Background(), tt.ids)

			require.Error(t, err)
			assert.Nil(t, snapshots)

			var fetchErr *interfaces.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.expectedKind, fetchErr.Kind)
			assert.Equal(t, opFetchMarkets, fetchErr.Op)
			assert.Contains(t, err.Error(), interfaces.ErrorMarker)
		})
	}
}

func TestService_StartRequiresClient(t *testing.T) {
	service := NewServiceWithClient(config.Default(), nil)
	assert.Error(t, service.Start(context.Background()))
	assert.False(t, service.Healthy())
}
