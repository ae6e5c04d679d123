package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CallBreakdown splits a capital call amount into its components.
// The components are informational; they are not required to sum to Amount.
type CallBreakdown struct {
	Investments    decimal.Decimal `json:"investments"`
	MgmtFee        decimal.Decimal `json:"mgmtFee"`
	FundExpenses   decimal.Decimal `json:"fundExpenses"`
	GPContribution decimal.Decimal `json:"gpContribution"`
}

// CapitalCall is a request from an underlying fund for committed capital.
// A future call is a forecast and does not count towards the called total.
type CapitalCall struct {
	CallID      string          `json:"callID"`
	FundID      string          `json:"fundID"`
	CallNumber  int             `json:"callNumber"` // Sequence per fund, not enforced unique
	CallDate    time.Time       `json:"callDate"`
	PaymentDate *time.Time      `json:"paymentDate"` // Nullable
	Amount      decimal.Decimal `json:"amount"`
	Breakdown   CallBreakdown   `json:"breakdown"`
	IsFuture    bool            `json:"isFuture"`
	Notes       string          `json:"notes"`
	AuditFields
}

// Normalize rounds the amount and breakdown to their stored precision.
func (c *CapitalCall) Normalize() {
	c.Amount = RoundAmount(c.Amount)
	c.Breakdown.Investments = RoundAmount(c.Breakdown.Investments)
	c.Breakdown.MgmtFee = RoundAmount(c.Breakdown.MgmtFee)
	c.Breakdown.FundExpenses = RoundAmount(c.Breakdown.FundExpenses)
	c.Breakdown.GPContribution = RoundAmount(c.Breakdown.GPContribution)
}

// Validate checks ledger write invariants for a capital call.
func (c CapitalCall) Validate() error {
	if c.FundID == "" {
		return apperrors.NewValidationError("capital call must reference a fund")
	}
	if c.CallNumber < 1 {
		return apperrors.NewValidationError(fmt.Sprintf("call number must be positive, got %d", c.CallNumber))
	}
	if c.CallDate.IsZero() {
		return apperrors.NewValidationError("call date is required")
	}
	if c.Amount.IsNegative() {
		return apperrors.NewValidationError(fmt.Sprintf("call amount must not be negative, got %s", c.Amount))
	}
	if err := checkAmount("call amount", c.Amount); err != nil {
		return err
	}
	parts := map[string]decimal.Decimal{
		"investments":     c.Breakdown.Investments,
		"mgmt fee":        c.Breakdown.MgmtFee,
		"fund expenses":   c.Breakdown.FundExpenses,
		"gp contribution": c.Breakdown.GPContribution,
	}
	for name, v := range parts {
		if v.IsNegative() {
			return apperrors.NewValidationError(fmt.Sprintf("%s must not be negative, got %s", name, v))
		}
		if err := checkAmount(name, v); err != nil {
			return err
		}
	}
	return nil
}
