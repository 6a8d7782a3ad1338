package coingecko_market_chart

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/interfaces"
	"github.com/status-im/crypto-insight-hub/metrics"
)

// Service fetches 7-day price histories
type Service struct {
	config        *config.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     APIClient
}

// NewService creates a new market chart service
func NewService(cfg *config.Config) *Service {
	return NewServiceWithClient(cfg, NewCoinGeckoClient(cfg))
}

// NewServiceWithClient creates a market chart service on top of the given API client
func NewServiceWithClient(cfg *config.Config, apiClient APIClient) *Service {
	return &Service{
		config:        cfg,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceMarketChart),
		apiClient:     apiClient,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.apiClient == nil {
		return fmt.Errorf("api client not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	if s.apiClient != nil {
		return s.apiClient.Healthy()
	}
	return false
}

func historyOp(id string) string {
	return "fetching price history for " + id
}

// History implements interfaces.IMarketChartService
func (s *Service) History(ctx context.Context, id string) (interfaces.PriceSeries, error) {
	params := NewHistoryParams(id)
	op := historyOp(id)

	if err := params.Validate(); err != nil {
		kind := interfaces.FailureEmpty
		if errors.Is(err, interfaces.ErrInvalidCoinID) {
			kind = interfaces.FailureMalformed
		}
		return interfaces.PriceSeries{}, &interfaces.FetchError{Op: op, Kind: kind, Message: err.Error(), Err: err}
	}

	log.Printf("Loading market chart data for coin %s, currency=%s, days=%s", params.ID, params.Currency, params.Days)

	chartData, err := s.apiClient.FetchMarketChart(ctx, params)
	if err != nil {
		log.Printf("apiClient.FetchMarketChart failed for %s: %v", id, err)
		return interfaces.PriceSeries{}, interfaces.WithOp(err, op)
	}

	rawPrices, err := pricesField(chartData)
	if err != nil {
		return interfaces.PriceSeries{}, interfaces.WithOp(err, op)
	}

	points, err := parsePricePoints(rawPrices)
	if err != nil {
		return interfaces.PriceSeries{}, interfaces.WithOp(err, op)
	}

	if len(points) == 0 {
		return interfaces.PriceSeries{}, interfaces.NewFetchError(op, interfaces.FailureEmpty, "no price history returned")
	}

	return interfaces.PriceSeries{
		CoinID: id,
		Points: points,
	}, nil
}

// Histories implements interfaces.IMarketChartService.
// Up to history_concurrency coins are fetched at once; results keep the order of ids.
func (s *Service) Histories(ctx context.Context, ids []string) ([]interfaces.PriceSeries, []interfaces.SeriesWarning) {
	type outcome struct {
		series interfaces.PriceSeries
		err    error
	}
	outcomes := make([]outcome, len(ids))

	limit := 1
	if s.config != nil && s.config.CoingeckoMarketChart.HistoryConcurrency > 0 {
		limit = s.config.CoingeckoMarketChart.HistoryConcurrency
	}

	// Per-coin failures are kept in outcomes so one coin never cancels the others
	var group errgroup.Group
	group.SetLimit(limit)
	for i, id := range ids {
		group.Go(func() error {
			series, err := s.History(ctx, id)
			outcomes[i] = outcome{series: series, err: err}
			return nil
		})
	}
	_ = group.Wait()

	series := make([]interfaces.PriceSeries, 0, len(ids))
	warnings := make([]interfaces.SeriesWarning, 0)
	for i, result := range outcomes {
		if result.err != nil {
			kind := interfaces.KindOf(result.err)
			s.metricsWriter.RecordHistoryWarning(kind.String())
			log.Printf("History unavailable for %s: %v", ids[i], result.err)
			warnings = append(warnings, interfaces.SeriesWarning{
				CoinID:  ids[i],
				Kind:    kind,
				Message: result.err.Error(),
			})
			continue
		}
		series = append(series, result.series)
	}

	return series, warnings
}
