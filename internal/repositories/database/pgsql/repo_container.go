package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository over one pool. timeout bounds
// each store operation; readRetries is the number of extra attempts for reads.
func NewRepositoryProvider(dbPool *pgxpool.Pool, timeout time.Duration, readRetries uint64) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool, Timeout: timeout, ReadRetries: readRetries}

	return portsrepo.RepositoryProvider{
		FundRepo:            newPgxFundRepository(base),
		InvestorRepo:        newPgxInvestorRepository(base),
		CapitalCallRepo:     newPgxCapitalCallRepository(base),
		DistributionRepo:    newPgxDistributionRepository(base),
		QuarterlyReportRepo: newPgxQuarterlyReportRepository(base),
		LPCallRepo:          newPgxLPCallRepository(base),
	}
}
