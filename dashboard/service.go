package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/status-im/crypto-insight-hub/coins"
	"github.com/status-im/crypto-insight-hub/interfaces"
	"github.com/status-im/crypto-insight-hub/metrics"
	"github.com/status-im/crypto-insight-hub/presentation"
)

// ErrNoCoins is returned when the user input holds no coin identifier
var ErrNoCoins = errors.New("no coin identifiers provided")

const opParseInput = "parsing input"

// Report is everything the dashboard shows for one comparison
type Report struct {
	Coins     []string                     `json:"coins"`
	Snapshots []interfaces.MarketSnapshot  `json:"snapshots"`
	Table     presentation.ComparisonTable `json:"table"`
	Chart     presentation.Chart           `json:"chart"`
	Warnings  []interfaces.SeriesWarning   `json:"warnings"`
}

// Service runs the fetch and presentation pipeline
type Service struct {
	markets     interfaces.IMarketsService
	marketChart interfaces.IMarketChartService
	insights    interfaces.IInsightsService
}

// NewService creates a dashboard service on top of the three fetchers
func NewService(markets interfaces.IMarketsService, marketChart interfaces.IMarketChartService, insights interfaces.IInsightsService) *Service {
	return &Service{
		markets:     markets,
		marketChart: marketChart,
		insights:    insights,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.markets == nil || s.marketChart == nil || s.insights == nil {
		return fmt.Errorf("dashboard fetchers not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// ParseCoins normalizes user input into the de-duplicated batch of ids
func ParseCoins(raw string) ([]string, error) {
	ids := coins.Unique(coins.ParseIdentifiers(raw))
	if len(ids) == 0 {
		return nil, &interfaces.FetchError{
			Op:      opParseInput,
			Kind:    interfaces.FailureEmpty,
			Message: ErrNoCoins.Error(),
			Err:     ErrNoCoins,
		}
	}
	return ids, nil
}

// Compare fetches snapshots and histories for the coins in raw.
// A snapshot failure aborts the whole report; history failures become warnings.
func (s *Service) Compare(ctx context.Context, raw string) (*Report, error) {
	defer metrics.RecordPipelineDuration(metrics.ServiceDashboard, "compare", time.Now())

	ids, err := ParseCoins(raw)
	if err != nil {
		return nil, err
	}

	log.Printf("Dashboard: Comparing %d coins: %s", len(ids), strings.Join(ids, ","))

	snapshots, err := s.markets.Snapshots(ctx, ids)
	if err != nil {
		log.Printf("Dashboard: Market data unavailable: %v", err)
		return nil, err
	}

	series, warnings := s.marketChart.Histories(ctx, ids)
	for _, warning := range warnings {
		log.Printf("Dashboard: Warning for %s: %s", warning.CoinID, warning.Message)
	}

	return &Report{
		Coins:     ids,
		Snapshots: snapshots,
		Table:     presentation.NewComparisonTable(snapshots),
		Chart:     presentation.NewPriceChart(series),
		Warnings:  warnings,
	}, nil
}

// Insight fetches generated text for one coin. The returned block is always
// populated: on failure it carries the error message in the error style.
func (s *Service) Insight(ctx context.Context, coinID string) (presentation.InsightBlock, error) {
	defer metrics.RecordPipelineDuration(metrics.ServiceDashboard, "insight", time.Now())

	id := strings.ToLower(strings.TrimSpace(coinID))
	if id == "" {
		err := &interfaces.FetchError{
			Op:      opParseInput,
			Kind:    interfaces.FailureEmpty,
			Message: ErrNoCoins.Error(),
			Err:     ErrNoCoins,
		}
		return presentation.NewInsightBlock(id, "", err), err
	}

	text, err := s.insights.Insight(ctx, id)
	if err != nil {
		log.Printf("Dashboard: Insight for %s failed: %v", id, err)
	}

	return presentation.NewInsightBlock(id, text, err), err
}
