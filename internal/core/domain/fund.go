package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FundStatus is the lifecycle state of an underlying fund commitment.
type FundStatus string

const (
	FundActive FundStatus = "active"
	FundClosed FundStatus = "closed"
	FundExited FundStatus = "exited"
)

// IsValid reports whether s is a known status.
func (s FundStatus) IsValid() bool {
	switch s {
	case FundActive, FundClosed, FundExited:
		return true
	}
	return false
}

// Fund is an underlying fund the master vehicle has committed capital to.
// It owns its capital calls, distributions and quarterly reports.
type Fund struct {
	FundID          string          `json:"fundID"`
	Name            string          `json:"name"`
	Manager         string          `json:"manager"`
	Strategy        string          `json:"strategy"`
	Commitment      decimal.Decimal `json:"commitment"`
	CurrencyCode    string          `json:"currencyCode"`
	Status          FundStatus      `json:"status"`
	VintageYear     int             `json:"vintageYear"`     // 0 when unknown
	InvestmentDate  *time.Time      `json:"investmentDate"`  // Nullable
	GeographicFocus string          `json:"geographicFocus"` // Nullable in storage, empty when absent
	AuditFields
}

// Normalize rounds the commitment to its stored precision.
func (f *Fund) Normalize() {
	f.Commitment = RoundAmount(f.Commitment)
}

// Validate checks the registry invariants for a fund record.
func (f Fund) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return apperrors.NewValidationError("fund name is required")
	}
	if f.Commitment.IsNegative() {
		return apperrors.NewValidationError(fmt.Sprintf("fund commitment must not be negative, got %s", f.Commitment))
	}
	if err := checkAmount("fund commitment", f.Commitment); err != nil {
		return err
	}
	if !IsSupportedCurrency(f.CurrencyCode) {
		return apperrors.NewValidationError(fmt.Sprintf("unsupported currency %q, expected USD or EUR", f.CurrencyCode))
	}
	if !f.Status.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown fund status %q", f.Status))
	}
	if f.VintageYear != 0 && (f.VintageYear < 1900 || f.VintageYear > 2200) {
		return apperrors.NewValidationError(fmt.Sprintf("vintage year %d is out of range", f.VintageYear))
	}
	return nil
}
