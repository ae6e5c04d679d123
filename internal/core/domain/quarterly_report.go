package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// QuarterlyReport is the performance snapshot of a fund for one quarter.
// (FundID, Year, Quarter) is the natural key.
type QuarterlyReport struct {
	ReportID   string          `json:"reportID"`
	FundID     string          `json:"fundID"`
	Year       int             `json:"year"`
	Quarter    int             `json:"quarter"`
	ReportDate *time.Time      `json:"reportDate"`
	NAV        decimal.Decimal `json:"nav"`
	TVPI       decimal.Decimal `json:"tvpi"` // multiple
	DPI        decimal.Decimal `json:"dpi"`  // multiple
	RVPI       decimal.Decimal `json:"rvpi"` // multiple
	IRR        decimal.Decimal `json:"irr"`  // percent, may be negative
	Notes      string          `json:"notes"`
	AuditFields
}

// Period returns the report period label, e.g. "2025-Q3".
func (r QuarterlyReport) Period() string {
	return fmt.Sprintf("%d-Q%d", r.Year, r.Quarter)
}

// Before orders reports by (Year, Quarter).
func (r QuarterlyReport) Before(o QuarterlyReport) bool {
	if r.Year != o.Year {
		return r.Year < o.Year
	}
	return r.Quarter < o.Quarter
}

// Normalize rounds NAV and the performance ratios to their stored precision.
func (r *QuarterlyReport) Normalize() {
	r.NAV = RoundAmount(r.NAV)
	r.TVPI = RoundMultiple(r.TVPI)
	r.DPI = RoundMultiple(r.DPI)
	r.RVPI = RoundMultiple(r.RVPI)
	r.IRR = RoundMultiple(r.IRR)
}

// Validate checks register write invariants. Multiples are not required to be
// non-negative.
func (r QuarterlyReport) Validate() error {
	if r.FundID == "" {
		return apperrors.NewValidationError("report must reference a fund")
	}
	if r.Year < 1900 || r.Year > 2200 {
		return apperrors.NewValidationError(fmt.Sprintf("report year %d is out of range", r.Year))
	}
	if r.Quarter < 1 || r.Quarter > 4 {
		return apperrors.NewValidationError(fmt.Sprintf("quarter must be between 1 and 4, got %d", r.Quarter))
	}
	if err := checkAmount("nav", r.NAV); err != nil {
		return err
	}
	ratios := []struct {
		name string
		v    decimal.Decimal
	}{{"tvpi", r.TVPI}, {"dpi", r.DPI}, {"rvpi", r.RVPI}, {"irr", r.IRR}}
	for _, ratio := range ratios {
		if err := checkMultiple(ratio.name, ratio.v); err != nil {
			return err
		}
	}
	return nil
}
