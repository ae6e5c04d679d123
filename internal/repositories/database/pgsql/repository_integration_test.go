package pgsql

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// testDatabaseURLEnv names a disposable Postgres database. Every table is
// truncated before each test.
const testDatabaseURLEnv = "FUND_LEDGER_TEST_DATABASE_URL"

type RepositoryIntegrationTestSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
	now   time.Time
}

func (suite *RepositoryIntegrationTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("skipping integration test in short mode.")
	}
	url := os.Getenv(testDatabaseURLEnv)
	if url == "" {
		suite.T().Skipf("%s not set", testDatabaseURLEnv)
	}

	suite.ctx = context.Background()
	suite.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", slog.Default()))
	pool, err := database.NewPgxPool(suite.ctx, url, 5*time.Second)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repos = NewRepositoryProvider(pool, 5*time.Second, 0)
	suite.now = time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)
}

func (suite *RepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pool != nil {
		database.ClosePgxPool(suite.pool)
	}
}

func (suite *RepositoryIntegrationTestSuite) SetupTest() {
	_, err := suite.pool.Exec(suite.ctx, `
		TRUNCATE lp_payments, lp_calls, investors, quarterly_reports, distributions, capital_calls, funds;
	`)
	suite.Require().NoError(err)
}

func (suite *RepositoryIntegrationTestSuite) audit() domain.AuditFields {
	return domain.NewAuditFields("user-1", suite.now)
}

func (suite *RepositoryIntegrationTestSuite) seedInvestor(name string) string {
	id := uuid.NewString()
	suite.Require().NoError(suite.repos.InvestorRepo.SaveInvestor(suite.ctx, domain.Investor{
		InvestorID:  id,
		Name:        name,
		Commitment:  decimal.NewFromInt(1000000),
		AuditFields: suite.audit(),
	}))
	return id
}

func (suite *RepositoryIntegrationTestSuite) seedLPCall(pct int64) string {
	id := uuid.NewString()
	suite.Require().NoError(suite.repos.LPCallRepo.SaveLPCall(suite.ctx, domain.LPCall{
		LPCallID:    id,
		CallDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		CallPct:     decimal.NewFromInt(pct),
		AuditFields: suite.audit(),
	}))
	return id
}

func (suite *RepositoryIntegrationTestSuite) revision(lpCallID string) int64 {
	call, err := suite.repos.LPCallRepo.FindLPCallByID(suite.ctx, lpCallID)
	suite.Require().NoError(err)
	return call.Revision
}

func (suite *RepositoryIntegrationTestSuite) paid() map[domain.PaymentKey]bool {
	payments, err := suite.repos.LPCallRepo.ListPayments(suite.ctx)
	suite.Require().NoError(err)
	out := make(map[domain.PaymentKey]bool, len(payments))
	for _, p := range payments {
		out[p.Key()] = p.IsPaid
	}
	return out
}

func (suite *RepositoryIntegrationTestSuite) setPaid(lpCallID, investorID string, isPaid bool) int64 {
	rev, err := suite.repos.LPCallRepo.UpsertPayment(suite.ctx, domain.LPPayment{
		PaymentID:   uuid.NewString(),
		LPCallID:    lpCallID,
		InvestorID:  investorID,
		IsPaid:      isPaid,
		AuditFields: suite.audit(),
	})
	suite.Require().NoError(err)
	return rev
}

func (suite *RepositoryIntegrationTestSuite) TestUpsertPayment_RevisionOnlyMovesOnChange() {
	inv := suite.seedInvestor("LP A")
	call := suite.seedLPCall(10)

	suite.Equal(int64(1), suite.setPaid(call, inv, true))
	suite.Equal(int64(1), suite.setPaid(call, inv, true))
	suite.Equal(int64(1), suite.revision(call))

	suite.Equal(int64(2), suite.setPaid(call, inv, false))
	suite.Equal(int64(2), suite.revision(call))
}

func (suite *RepositoryIntegrationTestSuite) TestBatchSave_WritesOnlyChangedCells() {
	a, b := suite.seedInvestor("LP A"), suite.seedInvestor("LP B")
	k1, k2 := suite.seedLPCall(10), suite.seedLPCall(20)
	rev1 := suite.setPaid(k1, a, true)

	res, err := suite.repos.LPCallRepo.BatchSavePayments(suite.ctx, []domain.PaymentCell{
		{LPCallID: k1, InvestorID: a, IsPaid: true},
		{LPCallID: k1, InvestorID: b, IsPaid: false},
		{LPCallID: k2, InvestorID: b, IsPaid: true},
	}, map[string]int64{k1: rev1, k2: 0}, "user-2", suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, res.Written)
	suite.Equal(2, res.Unchanged)
	suite.Equal(rev1, res.Revisions[k1])
	suite.Equal(int64(1), res.Revisions[k2])
	suite.Equal(rev1, suite.revision(k1))
	suite.Equal(int64(1), suite.revision(k2))

	stored := suite.paid()
	suite.True(stored[domain.PaymentKey{LPCallID: k2, InvestorID: b}])
	_, hasUnpaidRow := stored[domain.PaymentKey{LPCallID: k1, InvestorID: b}]
	suite.False(hasUnpaidRow)
}

func (suite *RepositoryIntegrationTestSuite) TestBatchSave_NoOpBatchKeepsRevision() {
	a := suite.seedInvestor("LP A")
	k1 := suite.seedLPCall(10)
	rev := suite.setPaid(k1, a, true)

	res, err := suite.repos.LPCallRepo.BatchSavePayments(suite.ctx, []domain.PaymentCell{
		{LPCallID: k1, InvestorID: a, IsPaid: true},
	}, map[string]int64{k1: rev}, "user-2", suite.now)

	suite.Require().NoError(err)
	suite.Zero(res.Written)
	suite.Equal(1, res.Unchanged)
	suite.Equal(rev, suite.revision(k1))
}

func (suite *RepositoryIntegrationTestSuite) TestBatchSave_StaleRevisionWritesNothing() {
	a, b := suite.seedInvestor("LP A"), suite.seedInvestor("LP B")
	k1, k2 := suite.seedLPCall(10), suite.seedLPCall(20)
	rev2 := suite.setPaid(k2, a, true)

	_, err := suite.repos.LPCallRepo.BatchSavePayments(suite.ctx, []domain.PaymentCell{
		{LPCallID: k1, InvestorID: a, IsPaid: true},
		{LPCallID: k2, InvestorID: b, IsPaid: true},
	}, map[string]int64{k1: 0, k2: rev2 - 1}, "user-2", suite.now)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Equal(int64(0), suite.revision(k1))
	suite.Equal(rev2, suite.revision(k2))
	suite.Len(suite.paid(), 1)
}

func (suite *RepositoryIntegrationTestSuite) TestBatchSave_FailedWriteRollsBackEarlierCells() {
	a := suite.seedInvestor("LP A")
	k1 := suite.seedLPCall(10)

	_, err := suite.repos.LPCallRepo.BatchSavePayments(suite.ctx, []domain.PaymentCell{
		{LPCallID: k1, InvestorID: a, IsPaid: true},
		{LPCallID: k1, InvestorID: uuid.NewString(), IsPaid: true},
	}, map[string]int64{k1: 0}, "user-2", suite.now)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.paid())
	suite.Equal(int64(0), suite.revision(k1))
}

func (suite *RepositoryIntegrationTestSuite) TestBatchSave_UnknownCall() {
	a := suite.seedInvestor("LP A")
	missing := uuid.NewString()

	_, err := suite.repos.LPCallRepo.BatchSavePayments(suite.ctx, []domain.PaymentCell{
		{LPCallID: missing, InvestorID: a, IsPaid: true},
	}, map[string]int64{missing: 0}, "user-2", suite.now)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.paid())
}

func (suite *RepositoryIntegrationTestSuite) TestDeleteLPCall_RemovesPayments() {
	a := suite.seedInvestor("LP A")
	k1, k2 := suite.seedLPCall(10), suite.seedLPCall(20)
	suite.setPaid(k1, a, true)
	suite.setPaid(k2, a, true)

	suite.Require().NoError(suite.repos.LPCallRepo.DeleteLPCall(suite.ctx, k1))

	stored := suite.paid()
	suite.Len(stored, 1)
	suite.True(stored[domain.PaymentKey{LPCallID: k2, InvestorID: a}])
	suite.ErrorIs(suite.repos.LPCallRepo.DeleteLPCall(suite.ctx, k1), apperrors.ErrNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestDeleteInvestor_BumpsTouchedCalls() {
	a, b := suite.seedInvestor("LP A"), suite.seedInvestor("LP B")
	k1, k2 := suite.seedLPCall(10), suite.seedLPCall(20)
	rev1 := suite.setPaid(k1, a, true)
	rev2 := suite.setPaid(k2, b, true)

	suite.Require().NoError(suite.repos.InvestorRepo.DeleteInvestor(suite.ctx, a))

	suite.Equal(rev1+1, suite.revision(k1))
	suite.Equal(rev2, suite.revision(k2))
	suite.Len(suite.paid(), 1)
}

func (suite *RepositoryIntegrationTestSuite) TestDeleteFund_RemovesOwnedRows() {
	keep, drop := uuid.NewString(), uuid.NewString()
	for _, id := range []string{keep, drop} {
		suite.Require().NoError(suite.repos.FundRepo.SaveFund(suite.ctx, domain.Fund{
			FundID:       id,
			Name:         "Fund " + id[:8],
			Commitment:   decimal.NewFromInt(1000),
			CurrencyCode: domain.CurrencyUSD,
			Status:       domain.FundActive,
			AuditFields:  suite.audit(),
		}))
		suite.Require().NoError(suite.repos.CapitalCallRepo.SaveCapitalCall(suite.ctx, domain.CapitalCall{
			CallID:      uuid.NewString(),
			FundID:      id,
			CallNumber:  1,
			CallDate:    suite.now,
			Amount:      decimal.NewFromInt(100),
			AuditFields: suite.audit(),
		}))
		suite.Require().NoError(suite.repos.DistributionRepo.SaveDistribution(suite.ctx, domain.Distribution{
			DistributionID: uuid.NewString(),
			FundID:         id,
			DistNumber:     1,
			DistDate:       suite.now,
			Amount:         decimal.NewFromInt(40),
			DistType:       domain.DistributionIncome,
			AuditFields:    suite.audit(),
		}))
		_, err := suite.repos.QuarterlyReportRepo.UpsertReport(suite.ctx, domain.QuarterlyReport{
			ReportID:    uuid.NewString(),
			FundID:      id,
			Year:        2025,
			Quarter:     2,
			AuditFields: suite.audit(),
		})
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.repos.FundRepo.DeleteFund(suite.ctx, drop))

	for _, check := range []struct {
		fundID string
		want   int
	}{{drop, 0}, {keep, 1}} {
		calls, err := suite.repos.CapitalCallRepo.ListCapitalCallsByFund(suite.ctx, check.fundID)
		suite.Require().NoError(err)
		suite.Len(calls, check.want)
		dists, err := suite.repos.DistributionRepo.ListDistributionsByFund(suite.ctx, check.fundID)
		suite.Require().NoError(err)
		suite.Len(dists, check.want)
		reports, err := suite.repos.QuarterlyReportRepo.ListReportsByFund(suite.ctx, check.fundID)
		suite.Require().NoError(err)
		suite.Len(reports, check.want)
	}
	_, err := suite.repos.FundRepo.FindFundByID(suite.ctx, drop)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.repos.FundRepo.DeleteFund(suite.ctx, drop), apperrors.ErrNotFound)
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
