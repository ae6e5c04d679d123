package dto

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CurrencyTotalsResponse holds portfolio totals in a single currency.
type CurrencyTotalsResponse struct {
	domain.CurrencyTotals
	CommitmentDisplay string `json:"commitmentDisplay"`
	CalledDisplay     string `json:"calledDisplay"`
	UncalledDisplay   string `json:"uncalledDisplay"`
}

// UpcomingCallResponse is a call due on or after today on the dashboard.
type UpcomingCallResponse struct {
	FundID        string          `json:"fundID"`
	FundName      string          `json:"fundName"`
	CallNumber    int             `json:"callNumber"`
	DueDate       Date            `json:"dueDate" swaggertype:"string"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
	IsFuture      bool            `json:"isFuture"`
}

// OverviewResponse is the portfolio dashboard.
type OverviewResponse struct {
	ActiveFunds   int                       `json:"activeFunds"`
	FundsByStatus map[domain.FundStatus]int `json:"fundsByStatus"`
	Totals        []CurrencyTotalsResponse  `json:"totals"`
	UpcomingCalls []UpcomingCallResponse    `json:"upcomingCalls"`
	Warning       string                    `json:"warning,omitempty"`
}

func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	res := OverviewResponse{
		ActiveFunds:   o.ActiveFunds,
		FundsByStatus: o.FundsByStatus,
		Totals:        make([]CurrencyTotalsResponse, len(o.Totals)),
		UpcomingCalls: make([]UpcomingCallResponse, len(o.UpcomingCalls)),
	}
	for i, t := range o.Totals {
		res.Totals[i] = CurrencyTotalsResponse{
			CurrencyTotals:    t,
			CommitmentDisplay: utils.FormatMoney(t.Commitment, t.CurrencyCode),
			CalledDisplay:     utils.FormatMoney(t.TotalCalled, t.CurrencyCode),
			UncalledDisplay:   utils.FormatMoney(t.Uncalled, t.CurrencyCode),
		}
	}
	for i, u := range o.UpcomingCalls {
		res.UpcomingCalls[i] = UpcomingCallResponse{
			FundID:        u.FundID,
			FundName:      u.FundName,
			CallNumber:    u.CallNumber,
			DueDate:       Date{Time: u.DueDate},
			Amount:        u.Amount,
			AmountDisplay: utils.FormatMoney(u.Amount, u.CurrencyCode),
			IsFuture:      u.IsFuture,
		}
	}
	return res
}
