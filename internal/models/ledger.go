package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalCall is a row of the capital_calls table.
type CapitalCall struct {
	CallID         string          `db:"call_id"`
	FundID         string          `db:"fund_id"`
	CallNumber     int             `db:"call_number"`
	CallDate       time.Time       `db:"call_date"`
	PaymentDate    *time.Time      `db:"payment_date"`
	Amount         decimal.Decimal `db:"amount"`
	Investments    decimal.Decimal `db:"investments"`
	MgmtFee        decimal.Decimal `db:"mgmt_fee"`
	FundExpenses   decimal.Decimal `db:"fund_expenses"`
	GPContribution decimal.Decimal `db:"gp_contribution"`
	IsFuture       bool            `db:"is_future"`
	Notes          *string         `db:"notes"`
	AuditFields
}

// Distribution is a row of the distributions table.
type Distribution struct {
	DistributionID string          `db:"distribution_id"`
	FundID         string          `db:"fund_id"`
	DistNumber     int             `db:"dist_number"`
	DistDate       time.Time       `db:"dist_date"`
	Amount         decimal.Decimal `db:"amount"`
	DistType       string          `db:"dist_type"`
	AuditFields
}

// QuarterlyReport is a row of the quarterly_reports table.
type QuarterlyReport struct {
	ReportID   string          `db:"report_id"`
	FundID     string          `db:"fund_id"`
	Year       int             `db:"year"`
	Quarter    int             `db:"quarter"`
	ReportDate *time.Time      `db:"report_date"`
	NAV        decimal.Decimal `db:"nav"`
	TVPI       decimal.Decimal `db:"tvpi"`
	DPI        decimal.Decimal `db:"dpi"`
	RVPI       decimal.Decimal `db:"rvpi"`
	IRR        decimal.Decimal `db:"irr"`
	Notes      *string         `db:"notes"`
	AuditFields
}
