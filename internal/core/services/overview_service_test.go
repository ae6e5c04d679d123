package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OverviewServiceTestSuite struct {
	suite.Suite
	fundRepo *MockFundRepository
	callRepo *MockCapitalCallRepository
	distRepo *MockDistributionRepository
	service  portssvc.OverviewSvcFacade
}

func (suite *OverviewServiceTestSuite) SetupTest() {
	suite.fundRepo = new(MockFundRepository)
	suite.callRepo = new(MockCapitalCallRepository)
	suite.distRepo = new(MockDistributionRepository)
	suite.service = services.NewOverviewService(suite.fundRepo, suite.callRepo, suite.distRepo, services.WithClock(fixedClock))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *OverviewServiceTestSuite) TestGetOverview_TotalsPerCurrency() {
	funds := []domain.Fund{
		{FundID: "f1", Name: "Growth I", Commitment: decimal.NewFromInt(1000), CurrencyCode: "USD", Status: domain.FundActive},
		{FundID: "f2", Name: "Buyout II", Commitment: decimal.NewFromInt(500), CurrencyCode: "EUR", Status: domain.FundActive},
		{FundID: "f3", Name: "Legacy", Commitment: decimal.NewFromInt(200), CurrencyCode: "USD", Status: domain.FundExited},
	}
	calls := []domain.CapitalCall{
		{CallID: "c1", FundID: "f1", CallNumber: 1, CallDate: day(2024, 3, 1), Amount: decimal.NewFromInt(300)},
		{CallID: "c2", FundID: "f2", CallNumber: 1, CallDate: day(2024, 5, 1), Amount: decimal.NewFromInt(100)},
		{CallID: "c3", FundID: "f3", CallNumber: 1, CallDate: day(2019, 5, 1), Amount: decimal.NewFromInt(200)},
	}
	dists := []domain.Distribution{
		{DistributionID: "d1", FundID: "f3", DistNumber: 1, DistDate: day(2023, 1, 1), Amount: decimal.NewFromInt(350), DistType: domain.DistributionCapital},
	}
	suite.fundRepo.On("ListFunds", mock.Anything).Return(funds, nil).Once()
	suite.callRepo.On("ListCapitalCalls", mock.Anything).Return(calls, nil).Once()
	suite.distRepo.On("ListDistributions", mock.Anything).Return(dists, nil).Once()

	overview, err := suite.service.GetOverview(context.Background())

	suite.Require().NoError(err)
	suite.Equal(2, overview.ActiveFunds)
	suite.Equal(map[domain.FundStatus]int{domain.FundActive: 2, domain.FundClosed: 0, domain.FundExited: 1}, overview.FundsByStatus)
	suite.Require().Len(overview.Totals, 2)

	eur, usd := overview.Totals[0], overview.Totals[1]
	suite.Equal("EUR", eur.CurrencyCode)
	suite.True(eur.Uncalled.Equal(decimal.NewFromInt(400)))
	suite.Equal("USD", usd.CurrencyCode)
	suite.Equal(2, usd.FundCount)
	suite.True(usd.Commitment.Equal(decimal.NewFromInt(1200)))
	suite.True(usd.TotalCalled.Equal(decimal.NewFromInt(500)))
	suite.True(usd.TotalDistributed.Equal(decimal.NewFromInt(350)))
	suite.True(usd.Uncalled.Equal(decimal.NewFromInt(700)))
	suite.Empty(overview.UpcomingCalls)
}

func (suite *OverviewServiceTestSuite) TestGetOverview_UpcomingCallsOrderedByDueDate() {
	paymentDate := day(2025, 7, 20)
	funds := []domain.Fund{
		{FundID: "f1", Name: "Growth I", Commitment: decimal.NewFromInt(1000), CurrencyCode: "USD", Status: domain.FundActive},
	}
	calls := []domain.CapitalCall{
		{CallID: "c1", FundID: "f1", CallNumber: 4, CallDate: day(2025, 9, 1), Amount: decimal.NewFromInt(50), IsFuture: true},
		{CallID: "c2", FundID: "f1", CallNumber: 3, CallDate: day(2025, 7, 1), PaymentDate: &paymentDate, Amount: decimal.NewFromInt(40), IsFuture: true},
		{CallID: "c3", FundID: "f1", CallNumber: 2, CallDate: day(2025, 1, 1), Amount: decimal.NewFromInt(30), IsFuture: true},
	}
	suite.fundRepo.On("ListFunds", mock.Anything).Return(funds, nil).Once()
	suite.callRepo.On("ListCapitalCalls", mock.Anything).Return(calls, nil).Once()
	suite.distRepo.On("ListDistributions", mock.Anything).Return([]domain.Distribution{}, nil).Once()

	overview, err := suite.service.GetOverview(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(overview.UpcomingCalls, 2)
	suite.Equal(3, overview.UpcomingCalls[0].CallNumber)
	suite.Equal(paymentDate, overview.UpcomingCalls[0].DueDate)
	suite.Equal(4, overview.UpcomingCalls[1].CallNumber)
	suite.Equal("Growth I", overview.UpcomingCalls[1].FundName)
}

func (suite *OverviewServiceTestSuite) TestGetOverview_RealizedCallWithPendingPayment() {
	pending := day(2025, 7, 10)
	settled := day(2025, 6, 1)
	funds := []domain.Fund{
		{FundID: "f1", Name: "Growth I", Commitment: decimal.NewFromInt(1000), CurrencyCode: "USD", Status: domain.FundActive},
	}
	calls := []domain.CapitalCall{
		{CallID: "c1", FundID: "f1", CallNumber: 1, CallDate: day(2025, 5, 1), PaymentDate: &settled, Amount: decimal.NewFromInt(20)},
		{CallID: "c2", FundID: "f1", CallNumber: 2, CallDate: day(2025, 6, 25), PaymentDate: &pending, Amount: decimal.NewFromInt(40)},
		{CallID: "c3", FundID: "f1", CallNumber: 3, CallDate: day(2025, 6, 28), Amount: decimal.NewFromInt(60)},
		{CallID: "c4", FundID: "f1", CallNumber: 4, CallDate: day(2025, 8, 1), Amount: decimal.NewFromInt(80), IsFuture: true},
	}
	suite.fundRepo.On("ListFunds", mock.Anything).Return(funds, nil).Once()
	suite.callRepo.On("ListCapitalCalls", mock.Anything).Return(calls, nil).Once()
	suite.distRepo.On("ListDistributions", mock.Anything).Return([]domain.Distribution{}, nil).Once()

	overview, err := suite.service.GetOverview(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(overview.UpcomingCalls, 2)
	suite.Equal(2, overview.UpcomingCalls[0].CallNumber)
	suite.Equal(pending, overview.UpcomingCalls[0].DueDate)
	suite.False(overview.UpcomingCalls[0].IsFuture)
	suite.Equal(4, overview.UpcomingCalls[1].CallNumber)
	suite.True(overview.UpcomingCalls[1].IsFuture)
}

func (suite *OverviewServiceTestSuite) TestGetOverview_EmptyPortfolio() {
	suite.fundRepo.On("ListFunds", mock.Anything).Return([]domain.Fund{}, nil).Once()
	suite.callRepo.On("ListCapitalCalls", mock.Anything).Return([]domain.CapitalCall{}, nil).Once()
	suite.distRepo.On("ListDistributions", mock.Anything).Return([]domain.Distribution{}, nil).Once()

	overview, err := suite.service.GetOverview(context.Background())

	suite.Require().NoError(err)
	suite.Zero(overview.ActiveFunds)
	suite.Empty(overview.Totals)
	suite.NotNil(overview.UpcomingCalls)
}

func (suite *OverviewServiceTestSuite) TestGetOverview_StoreUnavailable() {
	suite.fundRepo.On("ListFunds", mock.Anything).Return(nil, apperrors.NewUnavailableError("timeout", nil)).Once()
	suite.callRepo.On("ListCapitalCalls", mock.Anything).Return([]domain.CapitalCall{}, nil).Maybe()
	suite.distRepo.On("ListDistributions", mock.Anything).Return([]domain.Distribution{}, nil).Maybe()

	overview, err := suite.service.GetOverview(context.Background())

	suite.Nil(overview)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
}

func TestOverviewService(t *testing.T) {
	suite.Run(t, new(OverviewServiceTestSuite))
}
