package dto

import (
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateFundRequest defines the data needed to register a fund commitment.
type CreateFundRequest struct {
	Name            string            `json:"name" binding:"required"`
	Manager         string            `json:"manager"`
	Strategy        string            `json:"strategy"`
	Commitment      decimal.Decimal   `json:"commitment"`
	CurrencyCode    string            `json:"currencyCode" binding:"required,ledger_currency"`
	Status          domain.FundStatus `json:"status" binding:"omitempty,oneof=active closed exited"` // Defaults to active
	VintageYear     int               `json:"vintageYear" binding:"omitempty,min=1900,max=2200"`
	InvestmentDate  *Date             `json:"investmentDate" swaggertype:"string" example:"2024-01-31"`
	GeographicFocus string            `json:"geographicFocus"`
}

// UpdateFundRequest defines the data allowed for updating a fund.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateFundRequest struct {
	Name            *string            `json:"name"`
	Manager         *string            `json:"manager"`
	Strategy        *string            `json:"strategy"`
	Commitment      *decimal.Decimal   `json:"commitment"`
	CurrencyCode    *string            `json:"currencyCode" binding:"omitempty,ledger_currency"`
	Status          *domain.FundStatus `json:"status" binding:"omitempty,oneof=active closed exited"`
	VintageYear     *int               `json:"vintageYear" binding:"omitempty,min=1900,max=2200"`
	InvestmentDate  *Date              `json:"investmentDate" swaggertype:"string"`
	GeographicFocus *string            `json:"geographicFocus"`
}

// FundResponse defines the data returned for a fund.
type FundResponse struct {
	FundID            string            `json:"fundID"`
	Name              string            `json:"name"`
	Manager           string            `json:"manager"`
	Strategy          string            `json:"strategy"`
	Commitment        decimal.Decimal   `json:"commitment"`
	CommitmentDisplay string            `json:"commitmentDisplay"`
	CurrencyCode      string            `json:"currencyCode"`
	Status            domain.FundStatus `json:"status"`
	VintageYear       int               `json:"vintageYear,omitempty"`
	InvestmentDate    *Date             `json:"investmentDate,omitempty" swaggertype:"string"`
	GeographicFocus   string            `json:"geographicFocus,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	CreatedBy         string            `json:"createdBy"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy     string            `json:"lastUpdatedBy"`
}

// ToFundResponse converts a domain.Fund to FundResponse DTO
func ToFundResponse(f *domain.Fund) FundResponse {
	res := FundResponse{
		FundID:            f.FundID,
		Name:              f.Name,
		Manager:           f.Manager,
		Strategy:          f.Strategy,
		Commitment:        f.Commitment,
		CommitmentDisplay: utils.FormatMoney(f.Commitment, f.CurrencyCode),
		CurrencyCode:      f.CurrencyCode,
		Status:            f.Status,
		VintageYear:       f.VintageYear,
		GeographicFocus:   f.GeographicFocus,
		CreatedAt:         f.CreatedAt,
		CreatedBy:         f.CreatedBy,
		LastUpdatedAt:     f.LastUpdatedAt,
		LastUpdatedBy:     f.LastUpdatedBy,
	}
	if f.InvestmentDate != nil {
		res.InvestmentDate = &Date{Time: *f.InvestmentDate}
	}
	return res
}

// ToListFundResponse converts a slice of domain.Fund to a slice of FundResponse DTOs
func ToListFundResponse(funds []domain.Fund) []FundResponse {
	res := make([]FundResponse, len(funds))
	for i := range funds {
		res[i] = ToFundResponse(&funds[i])
	}
	return res
}

// ListFundsResponse wraps the list of funds.
type ListFundsResponse struct {
	Funds   []FundResponse `json:"funds"`
	Warning string         `json:"warning,omitempty"`
}

// FundSummaryResponse is the derived rollup of one fund.
type FundSummaryResponse struct {
	Fund             FundResponse             `json:"fund"`
	TotalCalled      decimal.Decimal          `json:"totalCalled"`
	FutureCalled     decimal.Decimal          `json:"futureCalled"`
	Uncalled         decimal.Decimal          `json:"uncalled"`
	UncalledDisplay  string                   `json:"uncalledDisplay"`
	CalledPct        *decimal.Decimal         `json:"calledPct"`
	CalledPctDisplay string                   `json:"calledPctDisplay"`
	TotalDistributed decimal.Decimal          `json:"totalDistributed"`
	OverCalled       bool                     `json:"overCalled"`
	LatestReport     *QuarterlyReportResponse `json:"latestReport,omitempty"`
}

// ToFundSummaryResponse converts a domain.FundSummary to its DTO.
func ToFundSummaryResponse(s *domain.FundSummary) FundSummaryResponse {
	res := FundSummaryResponse{
		Fund:             ToFundResponse(&s.Fund),
		TotalCalled:      s.TotalCalled,
		FutureCalled:     s.FutureCalled,
		Uncalled:         s.Uncalled,
		UncalledDisplay:  utils.FormatMoney(s.Uncalled, s.Fund.CurrencyCode),
		CalledPct:        s.CalledPct,
		CalledPctDisplay: utils.FormatPercent(s.CalledPct),
		TotalDistributed: s.TotalDistributed,
		OverCalled:       s.OverCalled,
	}
	if s.LatestReport != nil {
		r := ToQuarterlyReportResponse(s.LatestReport)
		res.LatestReport = &r
	}
	return res
}
