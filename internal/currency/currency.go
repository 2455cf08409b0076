package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotApplicable stands in for an undefined ratio.
const NotApplicable = "—"

const (
	symbol        = "$"
	decimalPlaces = 2
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Round rounds amount to cents.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(decimalPlaces)
}

// Money renders amount as dollars with thousands separators, e.g. $1,234.56 or -$5.00.
func Money(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	f, _ := Round(amount).Float64()
	return sign + symbol + printer.Sprintf("%.2f", f)
}

// Percent renders a ratio as a percentage with one decimal, 0.123 as 12.3%.
// A nil ratio renders as NotApplicable.
func Percent(ratio *decimal.Decimal) string {
	if ratio == nil {
		return NotApplicable
	}
	f, _ := ratio.Shift(2).Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}
