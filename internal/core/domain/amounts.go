package domain

import (
	"fmt"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Stored precision of ledger numbers. Amounts are NUMERIC(20,2), multiples and
// IRR are NUMERIC(10,4), LP call percentages are NUMERIC(7,4).
const (
	AmountScale   int32 = 2
	MultipleScale int32 = 4
	CallPctScale  int32 = 4
)

var (
	// maxAmount is the exclusive absolute bound of a NUMERIC(20,2) column.
	maxAmount = decimal.New(1, 18)
	// maxMultiple is the exclusive absolute bound of a NUMERIC(10,4) column.
	maxMultiple = decimal.New(1, 6)
)

// RoundAmount rounds v to the stored precision of a monetary column.
func RoundAmount(v decimal.Decimal) decimal.Decimal {
	return v.Round(AmountScale)
}

// RoundMultiple rounds v to the stored precision of a ratio column.
func RoundMultiple(v decimal.Decimal) decimal.Decimal {
	return v.Round(MultipleScale)
}

// RoundCallPct rounds v to the stored precision of an LP call percentage.
func RoundCallPct(v decimal.Decimal) decimal.Decimal {
	return v.Round(CallPctScale)
}

func checkAmount(name string, v decimal.Decimal) error {
	if v.Abs().GreaterThanOrEqual(maxAmount) {
		return apperrors.NewValidationError(fmt.Sprintf("%s %s exceeds the maximum storable amount", name, v))
	}
	return nil
}

func checkMultiple(name string, v decimal.Decimal) error {
	if v.Abs().GreaterThanOrEqual(maxMultiple) {
		return apperrors.NewValidationError(fmt.Sprintf("%s %s is out of range", name, v))
	}
	return nil
}
