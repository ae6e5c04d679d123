package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund is a row of the funds table.
type Fund struct {
	FundID          string          `db:"fund_id"`
	Name            string          `db:"name"`
	Manager         *string         `db:"manager"`
	Strategy        *string         `db:"strategy"`
	Commitment      decimal.Decimal `db:"commitment"`
	CurrencyCode    string          `db:"currency_code"`
	Status          string          `db:"status"`
	VintageYear     *int            `db:"vintage_year"`
	InvestmentDate  *time.Time      `db:"investment_date"`
	GeographicFocus *string         `db:"geographic_focus"`
	AuditFields
}

// Investor is a row of the investors table.
type Investor struct {
	InvestorID string          `db:"investor_id"`
	Name       string          `db:"name"`
	Commitment decimal.Decimal `db:"commitment"`
	AuditFields
}
