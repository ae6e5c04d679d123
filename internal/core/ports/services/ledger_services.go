package services

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
)

// CapitalCallSvcFacade manages the per-fund capital call ledger.
type CapitalCallSvcFacade interface {
	RecordCall(ctx context.Context, fundID string, req dto.RecordCapitalCallRequest, userID string) (*domain.CapitalCall, error)
	DeleteCall(ctx context.Context, callID string) error

	// ListCalls returns realized and future calls ordered by call number.
	ListCalls(ctx context.Context, fundID string) ([]domain.CapitalCall, error)

	// ListFutureCalls returns only forecast calls.
	ListFutureCalls(ctx context.Context, fundID string) ([]domain.CapitalCall, error)
}

// DistributionSvcFacade manages the per-fund distribution ledger.
type DistributionSvcFacade interface {
	RecordDistribution(ctx context.Context, fundID string, req dto.RecordDistributionRequest, userID string) (*domain.Distribution, error)
	DeleteDistribution(ctx context.Context, distributionID string) error
	ListDistributions(ctx context.Context, fundID string) ([]domain.Distribution, error)
}

// QuarterlyReportSvcFacade manages the quarterly performance register.
type QuarterlyReportSvcFacade interface {
	// UpsertReport writes the snapshot for (fund, year, quarter), replacing any existing one.
	UpsertReport(ctx context.Context, fundID string, req dto.UpsertQuarterlyReportRequest, userID string) (*domain.QuarterlyReport, error)
	DeleteReport(ctx context.Context, reportID string) error

	// ListReports returns reports ordered by (year, quarter).
	ListReports(ctx context.Context, fundID string) ([]domain.QuarterlyReport, error)
}
