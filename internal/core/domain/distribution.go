package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DistributionType classifies a distribution event.
type DistributionType string

const (
	DistributionIncome  DistributionType = "income"
	DistributionCapital DistributionType = "capital"
	DistributionRecycle DistributionType = "recycle"
)

// IsValid reports whether t is a known distribution type.
func (t DistributionType) IsValid() bool {
	switch t {
	case DistributionIncome, DistributionCapital, DistributionRecycle:
		return true
	}
	return false
}

// Distribution is a payout from an underlying fund.
type Distribution struct {
	DistributionID string           `json:"distributionID"`
	FundID         string           `json:"fundID"`
	DistNumber     int              `json:"distNumber"`
	DistDate       time.Time        `json:"distDate"`
	Amount         decimal.Decimal  `json:"amount"`
	DistType       DistributionType `json:"distType"`
	AuditFields
}

// Normalize rounds the amount to its stored precision.
func (d *Distribution) Normalize() {
	d.Amount = RoundAmount(d.Amount)
}

// Validate checks ledger write invariants for a distribution.
func (d Distribution) Validate() error {
	if d.FundID == "" {
		return apperrors.NewValidationError("distribution must reference a fund")
	}
	if d.DistNumber < 1 {
		return apperrors.NewValidationError(fmt.Sprintf("distribution number must be positive, got %d", d.DistNumber))
	}
	if d.DistDate.IsZero() {
		return apperrors.NewValidationError("distribution date is required")
	}
	if d.Amount.IsNegative() {
		return apperrors.NewValidationError(fmt.Sprintf("distribution amount must not be negative, got %s", d.Amount))
	}
	if err := checkAmount("distribution amount", d.Amount); err != nil {
		return err
	}
	if !d.DistType.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown distribution type %q", d.DistType))
	}
	return nil
}
