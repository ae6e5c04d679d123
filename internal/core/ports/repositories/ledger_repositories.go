package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
)

// CapitalCallRepositoryFacade persists the per-fund capital call ledger.
type CapitalCallRepositoryFacade interface {
	SaveCapitalCall(ctx context.Context, call domain.CapitalCall) error

	// DeleteCapitalCall removes one call and returns the owning fund ID.
	DeleteCapitalCall(ctx context.Context, callID string) (fundID string, err error)

	// ListCapitalCallsByFund returns calls ordered by call number then call date.
	ListCapitalCallsByFund(ctx context.Context, fundID string) ([]domain.CapitalCall, error)

	// ListCapitalCalls returns the calls of every fund.
	ListCapitalCalls(ctx context.Context) ([]domain.CapitalCall, error)
}

// DistributionRepositoryFacade persists the per-fund distribution ledger.
type DistributionRepositoryFacade interface {
	SaveDistribution(ctx context.Context, dist domain.Distribution) error
	DeleteDistribution(ctx context.Context, distributionID string) (fundID string, err error)

	// ListDistributionsByFund returns distributions ordered by number then date.
	ListDistributionsByFund(ctx context.Context, fundID string) ([]domain.Distribution, error)
	ListDistributions(ctx context.Context) ([]domain.Distribution, error)
}

// QuarterlyReportRepositoryFacade persists the performance register.
type QuarterlyReportRepositoryFacade interface {
	// UpsertReport inserts or replaces the row for (fund, year, quarter) and
	// returns the stored report.
	UpsertReport(ctx context.Context, report domain.QuarterlyReport) (*domain.QuarterlyReport, error)
	DeleteReport(ctx context.Context, reportID string) (fundID string, err error)

	// ListReportsByFund returns reports ordered by year then quarter.
	ListReportsByFund(ctx context.Context, fundID string) ([]domain.QuarterlyReport, error)
}
