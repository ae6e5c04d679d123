package services

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/cache"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
)

// Read-through loaders shared by the services that read another ledger's rows.
// Empty results are normalized to empty slices.

func loadFunds(ctx context.Context, rc *cache.ReadCache, repo portsrepo.FundReader) ([]domain.Fund, error) {
	funds, err := cache.Load(ctx, rc, cache.KeyFunds, repo.ListFunds)
	if funds == nil && err == nil {
		funds = []domain.Fund{}
	}
	return funds, err
}

func loadFundCalls(ctx context.Context, rc *cache.ReadCache, repo portsrepo.CapitalCallRepositoryFacade, fundID string) ([]domain.CapitalCall, error) {
	calls, err := cache.Load(ctx, rc, cache.FundCallsKey(fundID), func(ctx context.Context) ([]domain.CapitalCall, error) {
		return repo.ListCapitalCallsByFund(ctx, fundID)
	})
	if calls == nil && err == nil {
		calls = []domain.CapitalCall{}
	}
	return calls, err
}

func loadFundDistributions(ctx context.Context, rc *cache.ReadCache, repo portsrepo.DistributionRepositoryFacade, fundID string) ([]domain.Distribution, error) {
	dists, err := cache.Load(ctx, rc, cache.FundDistributionsKey(fundID), func(ctx context.Context) ([]domain.Distribution, error) {
		return repo.ListDistributionsByFund(ctx, fundID)
	})
	if dists == nil && err == nil {
		dists = []domain.Distribution{}
	}
	return dists, err
}

func loadFundReports(ctx context.Context, rc *cache.ReadCache, repo portsrepo.QuarterlyReportRepositoryFacade, fundID string) ([]domain.QuarterlyReport, error) {
	reports, err := cache.Load(ctx, rc, cache.FundReportsKey(fundID), func(ctx context.Context) ([]domain.QuarterlyReport, error) {
		return repo.ListReportsByFund(ctx, fundID)
	})
	if reports == nil && err == nil {
		reports = []domain.QuarterlyReport{}
	}
	return reports, err
}

func loadInvestors(ctx context.Context, rc *cache.ReadCache, repo portsrepo.InvestorReader) ([]domain.Investor, error) {
	investors, err := cache.Load(ctx, rc, cache.KeyInvestors, repo.ListInvestors)
	if investors == nil && err == nil {
		investors = []domain.Investor{}
	}
	return investors, err
}
