package dto

import (
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordCapitalCallRequest defines a capital call to append to a fund's ledger.
type RecordCapitalCallRequest struct {
	CallNumber     int             `json:"callNumber" binding:"required,min=1"`
	CallDate       Date            `json:"callDate" swaggertype:"string" example:"2024-03-01"`
	PaymentDate    *Date           `json:"paymentDate" swaggertype:"string" example:"2024-03-15"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"number"`
	Investments    decimal.Decimal `json:"investments" swaggertype:"number"`
	MgmtFee        decimal.Decimal `json:"mgmtFee" swaggertype:"number"`
	FundExpenses   decimal.Decimal `json:"fundExpenses" swaggertype:"number"`
	GPContribution decimal.Decimal `json:"gpContribution" swaggertype:"number"`
	IsFuture       bool            `json:"isFuture"`
	Notes          string          `json:"notes"`
}

// CapitalCallResponse defines the data returned for a capital call.
type CapitalCallResponse struct {
	CallID         string          `json:"callID"`
	FundID         string          `json:"fundID"`
	CallNumber     int             `json:"callNumber"`
	CallDate       Date            `json:"callDate" swaggertype:"string"`
	PaymentDate    *Date           `json:"paymentDate,omitempty" swaggertype:"string"`
	Amount         decimal.Decimal `json:"amount"`
	Investments    decimal.Decimal `json:"investments"`
	MgmtFee        decimal.Decimal `json:"mgmtFee"`
	FundExpenses   decimal.Decimal `json:"fundExpenses"`
	GPContribution decimal.Decimal `json:"gpContribution"`
	IsFuture       bool            `json:"isFuture"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

func ToCapitalCallResponse(c *domain.CapitalCall) CapitalCallResponse {
	res := CapitalCallResponse{
		CallID:         c.CallID,
		FundID:         c.FundID,
		CallNumber:     c.CallNumber,
		CallDate:       Date{Time: c.CallDate},
		Amount:         c.Amount,
		Investments:    c.Breakdown.Investments,
		MgmtFee:        c.Breakdown.MgmtFee,
		FundExpenses:   c.Breakdown.FundExpenses,
		GPContribution: c.Breakdown.GPContribution,
		IsFuture:       c.IsFuture,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
	}
	if c.PaymentDate != nil {
		res.PaymentDate = &Date{Time: *c.PaymentDate}
	}
	return res
}

func ToListCapitalCallResponse(calls []domain.CapitalCall) []CapitalCallResponse {
	res := make([]CapitalCallResponse, len(calls))
	for i := range calls {
		res[i] = ToCapitalCallResponse(&calls[i])
	}
	return res
}

// ListCapitalCallsResponse wraps a fund's capital calls with their totals.
type ListCapitalCallsResponse struct {
	Calls        []CapitalCallResponse `json:"calls"`
	TotalCalled  decimal.Decimal       `json:"totalCalled"`
	FutureCalled decimal.Decimal       `json:"futureCalled"`
	Warning      string                `json:"warning,omitempty"`
}
