package presentation

import (
	"time"

	"github.com/status-im/crypto-insight-hub/coins"
	"github.com/status-im/crypto-insight-hub/interfaces"
)

const (
	ChartTitle = "Cryptocurrency Price History (Last 7 Days)"
	XAxisLabel = "Date"
	YAxisLabel = "Price in USD"
)

// ChartPoint is a single plotted sample
type ChartPoint struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// ChartLine is the plotted series of one coin
type ChartLine struct {
	CoinID string       `json:"coin_id"`
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// Chart is a multi-series time chart
type Chart struct {
	Title  string      `json:"title"`
	XLabel string      `json:"x_label"`
	YLabel string      `json:"y_label"`
	Lines  []ChartLine `json:"lines"`
}

// SeriesLabel returns the legend label of a coin, e.g. "Bitcoin Price"
func SeriesLabel(coinID string) string {
	return coins.Capitalize(coinID) + " Price"
}

// NewPriceChart plots one line per series in the given order
func NewPriceChart(series []interfaces.PriceSeries) Chart {
	lines := make([]ChartLine, 0, len(series))
	for _, s := range series {
		points := make([]ChartPoint, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, ChartPoint{
				X: p.Timestamp,
				Y: p.Price.InexactFloat64(),
			})
		}
		lines = append(lines, ChartLine{
			CoinID: s.CoinID,
			Label:  SeriesLabel(s.CoinID),
			Points: points,
		})
	}

	return Chart{
		Title:  ChartTitle,
		XLabel: XAxisLabel,
		YLabel: YAxisLabel,
		Lines:  lines,
	}
}
