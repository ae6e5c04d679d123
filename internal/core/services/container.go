package services

import (
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extractor portssvc.DocumentExtractor, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Fund = NewFundService(repos.FundRepo, repos.CapitalCallRepo, repos.DistributionRepo, repos.QuarterlyReportRepo, options...)
	container.Investor = NewInvestorService(repos.InvestorRepo, options...)
	container.CapitalCall = NewCapitalCallService(repos.CapitalCallRepo, repos.FundRepo, options...)
	container.Distribution = NewDistributionService(repos.DistributionRepo, repos.FundRepo, options...)
	container.QuarterlyReport = NewQuarterlyReportService(repos.QuarterlyReportRepo, repos.FundRepo, options...)
	container.LPMatrix = NewLPMatrixService(repos.InvestorRepo, repos.LPCallRepo, cfg.LPCallCapEnforced, options...)
	container.Overview = NewOverviewService(repos.FundRepo, repos.CapitalCallRepo, repos.DistributionRepo, options...)

	// Extracted drafts are committed through the ledger services so they get the same validation.
	container.Extraction = NewExtractionService(extractor, repos.FundRepo, repos.CapitalCallRepo, container.CapitalCall, container.QuarterlyReport, options...)

	return container
}
