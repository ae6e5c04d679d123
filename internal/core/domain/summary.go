package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundSummary is the rollup of a single fund's ledgers, recomputed on read.
type FundSummary struct {
	Fund             Fund             `json:"fund"`
	TotalCalled      decimal.Decimal  `json:"totalCalled"`
	FutureCalled     decimal.Decimal  `json:"futureCalled"`
	Uncalled         decimal.Decimal  `json:"uncalled"`
	CalledPct        *decimal.Decimal `json:"calledPct"` // nil when commitment is zero
	TotalDistributed decimal.Decimal  `json:"totalDistributed"`
	OverCalled       bool             `json:"overCalled"`
	LatestReport     *QuarterlyReport `json:"latestReport"`
}

// CurrencyTotals groups portfolio totals for one currency. Amounts in
// different currencies are never added together.
type CurrencyTotals struct {
	CurrencyCode     string          `json:"currencyCode"`
	Commitment       decimal.Decimal `json:"commitment"`
	TotalCalled      decimal.Decimal `json:"totalCalled"`
	TotalDistributed decimal.Decimal `json:"totalDistributed"`
	Uncalled         decimal.Decimal `json:"uncalled"`
	FundCount        int             `json:"fundCount"`
}

// UpcomingCall is a capital call with a due date on or after today: a forecast,
// or a realized call whose payment date has not passed yet.
type UpcomingCall struct {
	FundID       string          `json:"fundID"`
	FundName     string          `json:"fundName"`
	CurrencyCode string          `json:"currencyCode"`
	CallNumber   int             `json:"callNumber"`
	DueDate      time.Time       `json:"dueDate"`
	Amount       decimal.Decimal `json:"amount"`
	IsFuture     bool            `json:"isFuture"`
}

// Overview is the portfolio level dashboard.
type Overview struct {
	ActiveFunds   int                `json:"activeFunds"`
	FundsByStatus map[FundStatus]int `json:"fundsByStatus"`
	Totals        []CurrencyTotals   `json:"totals"`
	UpcomingCalls []UpcomingCall     `json:"upcomingCalls"`
}
