package dto

import (
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertQuarterlyReportRequest writes the performance snapshot for one period.
// A second write for the same (year, quarter) replaces the first.
type UpsertQuarterlyReportRequest struct {
	Year       int             `json:"year" binding:"required,min=1900,max=2200"`
	Quarter    int             `json:"quarter" binding:"required,min=1,max=4"`
	ReportDate *Date           `json:"reportDate" swaggertype:"string" example:"2025-09-30"`
	NAV        decimal.Decimal `json:"nav" swaggertype:"number"`
	TVPI       decimal.Decimal `json:"tvpi" swaggertype:"number"`
	DPI        decimal.Decimal `json:"dpi" swaggertype:"number"`
	RVPI       decimal.Decimal `json:"rvpi" swaggertype:"number"`
	IRR        decimal.Decimal `json:"irr" swaggertype:"number"`
	Notes      string          `json:"notes"`
}

// QuarterlyReportResponse defines the data returned for a quarterly report.
type QuarterlyReportResponse struct {
	ReportID      string          `json:"reportID"`
	FundID        string          `json:"fundID"`
	Year          int             `json:"year"`
	Quarter       int             `json:"quarter"`
	Period        string          `json:"period"`
	ReportDate    *Date           `json:"reportDate,omitempty" swaggertype:"string"`
	NAV           decimal.Decimal `json:"nav"`
	TVPI          decimal.Decimal `json:"tvpi"`
	DPI           decimal.Decimal `json:"dpi"`
	RVPI          decimal.Decimal `json:"rvpi"`
	IRR           decimal.Decimal `json:"irr"`
	Notes         string          `json:"notes,omitempty"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

func ToQuarterlyReportResponse(r *domain.QuarterlyReport) QuarterlyReportResponse {
	res := QuarterlyReportResponse{
		ReportID:      r.ReportID,
		FundID:        r.FundID,
		Year:          r.Year,
		Quarter:       r.Quarter,
		Period:        r.Period(),
		NAV:           r.NAV,
		TVPI:          r.TVPI,
		DPI:           r.DPI,
		RVPI:          r.RVPI,
		IRR:           r.IRR,
		Notes:         r.Notes,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
	if r.ReportDate != nil {
		res.ReportDate = &Date{Time: *r.ReportDate}
	}
	return res
}

func ToListQuarterlyReportResponse(reports []domain.QuarterlyReport) []QuarterlyReportResponse {
	res := make([]QuarterlyReportResponse, len(reports))
	for i := range reports {
		res[i] = ToQuarterlyReportResponse(&reports[i])
	}
	return res
}

// ListQuarterlyReportsResponse wraps a fund's reports in period order.
type ListQuarterlyReportsResponse struct {
	Reports []QuarterlyReportResponse `json:"reports"`
	Warning string                    `json:"warning,omitempty"`
}
