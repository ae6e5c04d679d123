package dto

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateLPCallRequest defines a master-fund pro-rata call.
type CreateLPCallRequest struct {
	CallDate Date            `json:"callDate" swaggertype:"string" example:"2025-01-15"`
	CallPct  decimal.Decimal `json:"callPct" swaggertype:"number" example:"10"`
}

// SetPaymentStatusRequest marks one investor's share of an LP call as paid or unpaid.
type SetPaymentStatusRequest struct {
	IsPaid *bool `json:"isPaid" binding:"required"`
}

// BatchSaveRequest carries the edited cells of the payment matrix and the
// revision of each call as last read by the client.
type BatchSaveRequest struct {
	Cells             []domain.PaymentCell `json:"cells" binding:"required,min=1"`
	ExpectedRevisions map[string]int64     `json:"expectedRevisions"`
}

// LPMatrixResponse wraps the reconciled matrix with display totals in the
// master fund's currency.
type LPMatrixResponse struct {
	domain.LPMatrix
	CurrencyCode            string `json:"currencyCode"`
	RequiredTotalDisplay    string `json:"requiredTotalDisplay"`
	PaidTotalDisplay        string `json:"paidTotalDisplay"`
	OutstandingTotalDisplay string `json:"outstandingTotalDisplay"`
	Warning                 string `json:"warning,omitempty"`
}

func ToLPMatrixResponse(m domain.LPMatrix, currencyCode string) LPMatrixResponse {
	return LPMatrixResponse{
		LPMatrix:                m,
		CurrencyCode:            currencyCode,
		RequiredTotalDisplay:    utils.FormatMoney(m.RequiredTotal, currencyCode),
		PaidTotalDisplay:        utils.FormatMoney(m.PaidTotal, currencyCode),
		OutstandingTotalDisplay: utils.FormatMoney(m.OutstandingTotal, currencyCode),
	}
}

// LPCallResponse defines the data returned for an LP call.
type LPCallResponse struct {
	LPCallID string          `json:"lpCallID"`
	CallDate Date            `json:"callDate" swaggertype:"string"`
	CallPct  decimal.Decimal `json:"callPct"`
	Revision int64           `json:"revision"`
}

func ToLPCallResponse(c *domain.LPCall) LPCallResponse {
	return LPCallResponse{
		LPCallID: c.LPCallID,
		CallDate: Date{Time: c.CallDate},
		CallPct:  c.CallPct,
		Revision: c.Revision,
	}
}
