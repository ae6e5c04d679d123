package dto

import (
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordDistributionRequest defines a distribution to append to a fund's ledger.
type RecordDistributionRequest struct {
	DistNumber int                     `json:"distNumber" binding:"required,min=1"`
	DistDate   Date                    `json:"distDate" swaggertype:"string" example:"2024-09-30"`
	Amount     decimal.Decimal         `json:"amount" swaggertype:"number"`
	DistType   domain.DistributionType `json:"distType" binding:"required,oneof=income capital recycle"`
}

// DistributionResponse defines the data returned for a distribution.
type DistributionResponse struct {
	DistributionID string                  `json:"distributionID"`
	FundID         string                  `json:"fundID"`
	DistNumber     int                     `json:"distNumber"`
	DistDate       Date                    `json:"distDate" swaggertype:"string"`
	Amount         decimal.Decimal         `json:"amount"`
	DistType       domain.DistributionType `json:"distType"`
	CreatedAt      time.Time               `json:"createdAt"`
	CreatedBy      string                  `json:"createdBy"`
}

func ToDistributionResponse(d *domain.Distribution) DistributionResponse {
	return DistributionResponse{
		DistributionID: d.DistributionID,
		FundID:         d.FundID,
		DistNumber:     d.DistNumber,
		DistDate:       Date{Time: d.DistDate},
		Amount:         d.Amount,
		DistType:       d.DistType,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

func ToListDistributionResponse(dists []domain.Distribution) []DistributionResponse {
	res := make([]DistributionResponse, len(dists))
	for i := range dists {
		res[i] = ToDistributionResponse(&dists[i])
	}
	return res
}

// ListDistributionsResponse wraps a fund's distributions with their total.
type ListDistributionsResponse struct {
	Distributions    []DistributionResponse `json:"distributions"`
	TotalDistributed decimal.Decimal        `json:"totalDistributed"`
	Warning          string                 `json:"warning,omitempty"`
}
