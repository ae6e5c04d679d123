package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FundRepo            FundRepositoryFacade
	InvestorRepo        InvestorRepositoryFacade
	CapitalCallRepo     CapitalCallRepositoryFacade
	DistributionRepo    DistributionRepositoryFacade
	QuarterlyReportRepo QuarterlyReportRepositoryFacade
	LPCallRepo          LPCallRepositoryFacade
}
