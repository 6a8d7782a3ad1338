package presentation

import (
	"github.com/shopspring/decimal"

	"github.com/status-im/crypto-insight-hub/interfaces"
)

// Trend classifies a 24h change for coloring
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
)

const (
	ColorGreen = "green"
	ColorRed   = "red"
)

// TrendOf returns TrendPositive only for strictly positive changes; zero is negative
func TrendOf(change decimal.Decimal) Trend {
	if change.IsPositive() {
		return TrendPositive
	}
	return TrendNegative
}

// Color returns the display color of the trend
func (t Trend) Color() string {
	if t == TrendPositive {
		return ColorGreen
	}
	return ColorRed
}

// TableColumns are the headers of the comparison table in display order
var TableColumns = []string{"Coin", "Price", "24h Change", "Market Cap", "Volume (24h)", "Circulating Supply"}

// TableRow is one formatted market snapshot
type TableRow struct {
	CoinID            string `json:"coin_id"`
	Name              string `json:"name"`
	Price             string `json:"price"`
	Change24h         string `json:"change_24h"`
	Trend             Trend  `json:"trend"`
	Color             string `json:"color"`
	MarketCap         string `json:"market_cap"`
	Volume            string `json:"volume"`
	CirculatingSupply string `json:"circulating_supply"`
}

// ComparisonTable is the formatted comparison of several coins
type ComparisonTable struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// NewTableRow formats a single snapshot
func NewTableRow(snapshot interfaces.MarketSnapshot) TableRow {
	trend := TrendOf(snapshot.PriceChangePct24h)
	return TableRow{
		CoinID:            snapshot.ID,
		Name:              snapshot.Name,
		Price:             FormatUSD(snapshot.CurrentPrice),
		Change24h:         FormatPercent(snapshot.PriceChangePct24h),
		Trend:             trend,
		Color:             trend.Color(),
		MarketCap:         FormatWholeUSD(snapshot.MarketCap),
		Volume:            FormatWholeUSD(snapshot.TotalVolume),
		CirculatingSupply: FormatQuantity(snapshot.CirculatingSupply),
	}
}

// NewComparisonTable builds one row per snapshot, keeping the snapshot order
func NewComparisonTable(snapshots []interfaces.MarketSnapshot) ComparisonTable {
	rows := make([]TableRow, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rows = append(rows, NewTableRow(snapshot))
	}
	return ComparisonTable{
		Columns: TableColumns,
		Rows:    rows,
	}
}
