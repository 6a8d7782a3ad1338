package presentation

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	comparisonSheet = "Comparison"
	greenFontColor  = "00A650"
	redFontColor    = "E02424"
)

// ExportComparisonXLSX writes the comparison table as an .xlsx workbook to w.
// The 24h change column is colored by trend.
func ExportComparisonXLSX(w io.Writer, table ComparisonTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", comparisonSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	trendStyles := map[Trend]int{}
	for trend, color := range map[Trend]string{TrendPositive: greenFontColor, TrendNegative: redFontColor} {
		styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: color}})
		if err != nil {
			return fmt.Errorf("%s style: %w", trend, err)
		}
		trendStyles[trend] = styleID
	}

	header := make([]interface{}, 0, len(table.Columns))
	for _, column := range table.Columns {
		header = append(header, column)
	}
	if err := f.SetSheetRow(comparisonSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(comparisonSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range table.Rows {
		rowNumber := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNumber)
		if err != nil {
			return err
		}

		values := []interface{}{row.Name, row.Price, row.Change24h, row.MarketCap, row.Volume, row.CirculatingSupply}
		if err := f.SetSheetRow(comparisonSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", rowNumber, err)
		}

		changeCell, err := excelize.CoordinatesToCellName(3, rowNumber)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(comparisonSheet, changeCell, changeCell, trendStyles[row.Trend]); err != nil {
			return fmt.Errorf("style row %d: %w", rowNumber, err)
		}
	}

	if err := f.SetColWidth(comparisonSheet, "A", "F", 22); err != nil {
		return err
	}

	return f.Write(w)
}
