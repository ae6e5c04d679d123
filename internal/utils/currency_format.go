package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PercentPlaceholder is shown when a percentage is undefined, e.g. a called
// percentage against a zero commitment.
const PercentPlaceholder = "—"

// FormatMoney renders an amount with the currency's symbol, separators and
// minor-unit precision. Unknown codes fall back to the plain amount.
// Example: 1421616 with USD returns "$1,421,616.00"
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	cur := money.GetCurrency(strings.ToUpper(currencyCode))
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatPercent renders a percentage with one decimal, or the placeholder when nil.
func FormatPercent(pct *decimal.Decimal) string {
	if pct == nil {
		return PercentPlaceholder
	}
	return pct.StringFixed(1) + "%"
}
