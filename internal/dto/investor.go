package dto

import (
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestorRequest defines the data needed to register a limited partner.
type CreateInvestorRequest struct {
	Name       string          `json:"name" binding:"required"`
	Commitment decimal.Decimal `json:"commitment"`
}

// UpdateInvestorRequest defines the data allowed for updating an investor.
type UpdateInvestorRequest struct {
	Name       *string          `json:"name"`
	Commitment *decimal.Decimal `json:"commitment"`
}

// InvestorResponse defines the data returned for an investor.
type InvestorResponse struct {
	InvestorID    string          `json:"investorID"`
	Name          string          `json:"name"`
	Commitment    decimal.Decimal `json:"commitment"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

func ToInvestorResponse(inv *domain.Investor) InvestorResponse {
	return InvestorResponse{
		InvestorID:    inv.InvestorID,
		Name:          inv.Name,
		Commitment:    inv.Commitment,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
		LastUpdatedAt: inv.LastUpdatedAt,
		LastUpdatedBy: inv.LastUpdatedBy,
	}
}

func ToListInvestorResponse(investors []domain.Investor) []InvestorResponse {
	res := make([]InvestorResponse, len(investors))
	for i := range investors {
		res[i] = ToInvestorResponse(&investors[i])
	}
	return res
}

// ListInvestorsResponse wraps the list of investors.
type ListInvestorsResponse struct {
	Investors []InvestorResponse `json:"investors"`
	Warning   string             `json:"warning,omitempty"`
}
