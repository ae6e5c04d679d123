package domain

import (
	"github.com/shopspring/decimal"
)

// Document is raw content handed to the extraction collaborator.
type Document struct {
	Filename string
	MIMEType string
	Content  []byte
}

// ExtractedCapitalCall is a best-effort capital call read from a document.
// Every field may be nil when the extractor could not find it.
type ExtractedCapitalCall struct {
	CallNumber     *int             `json:"call_number"`
	CallDate       *string          `json:"call_date"`
	PaymentDate    *string          `json:"payment_date"`
	Amount         *decimal.Decimal `json:"amount"`
	Investments    *decimal.Decimal `json:"investments"`
	MgmtFee        *decimal.Decimal `json:"mgmt_fee"`
	FundExpenses   *decimal.Decimal `json:"fund_expenses"`
	GPContribution *decimal.Decimal `json:"gp_contribution"`
	Notes          *string          `json:"notes"`
}

// ExtractedQuarterlyReport is a best-effort quarterly report read from a document.
type ExtractedQuarterlyReport struct {
	Year       *int             `json:"year"`
	Quarter    *int             `json:"quarter"`
	ReportDate *string          `json:"report_date"`
	NAV        *decimal.Decimal `json:"nav"`
	TVPI       *decimal.Decimal `json:"tvpi"`
	DPI        *decimal.Decimal `json:"dpi"`
	RVPI       *decimal.Decimal `json:"rvpi"`
	IRR        *decimal.Decimal `json:"irr"`
	Notes      *string          `json:"notes"`
}
