package presentation

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatUSD renders an amount as a USD string with thousands separators, e.g. "$1,234.56"
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return "-$" + printer.Sprintf("%.2f", rounded.Abs().InexactFloat64())
	}
	return "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatWholeUSD renders large amounts such as market cap without cents, e.g. "$1,280,000,000"
func FormatWholeUSD(amount int64) string {
	if amount < 0 {
		return "-$" + printer.Sprintf("%d", -amount)
	}
	return "$" + printer.Sprintf("%d", amount)
}

// FormatPercent renders a percentage with two decimals and an explicit sign for positive values
func FormatPercent(pct decimal.Decimal) string {
	formatted := pct.StringFixed(2) + "%"
	if pct.Round(2).IsPositive() {
		return "+" + formatted
	}
	return formatted
}

// FormatQuantity renders a unit count with thousands separators and no fraction.
// It works on the decimal digits, so counts beyond the int64 range keep their value.
func FormatQuantity(quantity decimal.Decimal) string {
	digits := quantity.Round(0).String()
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	return sign + groupThousands(digits)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
