package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockFundRepository is a mock type for the FundRepositoryFacade interface
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fund), args.Error(1)
}

func (m *MockFundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	return m.Called(ctx, fund).Error(0)
}

func (m *MockFundRepository) UpdateFund(ctx context.Context, fund domain.Fund) error {
	return m.Called(ctx, fund).Error(0)
}

func (m *MockFundRepository) DeleteFund(ctx context.Context, fundID string) error {
	return m.Called(ctx, fundID).Error(0)
}

// MockInvestorRepository is a mock type for the InvestorRepositoryFacade interface
type MockInvestorRepository struct {
	mock.Mock
}

func (m *MockInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investor), args.Error(1)
}

func (m *MockInvestorRepository) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investor), args.Error(1)
}

func (m *MockInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	return m.Called(ctx, investor).Error(0)
}

func (m *MockInvestorRepository) UpdateInvestor(ctx context.Context, investor domain.Investor) error {
	return m.Called(ctx, investor).Error(0)
}

func (m *MockInvestorRepository) DeleteInvestor(ctx context.Context, investorID string) error {
	return m.Called(ctx, investorID).Error(0)
}

// MockCapitalCallRepository is a mock type for the CapitalCallRepositoryFacade interface
type MockCapitalCallRepository struct {
	mock.Mock
}

func (m *MockCapitalCallRepository) SaveCapitalCall(ctx context.Context, call domain.CapitalCall) error {
	return m.Called(ctx, call).Error(0)
}

func (m *MockCapitalCallRepository) DeleteCapitalCall(ctx context.Context, callID string) (string, error) {
	args := m.Called(ctx, callID)
	return args.String(0), args.Error(1)
}

func (m *MockCapitalCallRepository) ListCapitalCallsByFund(ctx context.Context, fundID string) ([]domain.CapitalCall, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalCall), args.Error(1)
}

func (m *MockCapitalCallRepository) ListCapitalCalls(ctx context.Context) ([]domain.CapitalCall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalCall), args.Error(1)
}

// MockDistributionRepository is a mock type for the DistributionRepositoryFacade interface
type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) SaveDistribution(ctx context.Context, dist domain.Distribution) error {
	return m.Called(ctx, dist).Error(0)
}

func (m *MockDistributionRepository) DeleteDistribution(ctx context.Context, distributionID string) (string, error) {
	args := m.Called(ctx, distributionID)
	return args.String(0), args.Error(1)
}

func (m *MockDistributionRepository) ListDistributionsByFund(ctx context.Context, fundID string) ([]domain.Distribution, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Distribution), args.Error(1)
}

func (m *MockDistributionRepository) ListDistributions(ctx context.Context) ([]domain.Distribution, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Distribution), args.Error(1)
}

// MockQuarterlyReportRepository is a mock type for the QuarterlyReportRepositoryFacade interface
type MockQuarterlyReportRepository struct {
	mock.Mock
}

func (m *MockQuarterlyReportRepository) UpsertReport(ctx context.Context, report domain.QuarterlyReport) (*domain.QuarterlyReport, error) {
	args := m.Called(ctx, report)
	if fn, ok := args.Get(0).(func(context.Context, domain.QuarterlyReport) *domain.QuarterlyReport); ok {
		return fn(ctx, report), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuarterlyReport), args.Error(1)
}

func (m *MockQuarterlyReportRepository) DeleteReport(ctx context.Context, reportID string) (string, error) {
	args := m.Called(ctx, reportID)
	return args.String(0), args.Error(1)
}

func (m *MockQuarterlyReportRepository) ListReportsByFund(ctx context.Context, fundID string) ([]domain.QuarterlyReport, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuarterlyReport), args.Error(1)
}

// MockLPCallRepository is a mock type for the LPCallRepositoryFacade interface
type MockLPCallRepository struct {
	mock.Mock
}

func (m *MockLPCallRepository) FindLPCallByID(ctx context.Context, lpCallID string) (*domain.LPCall, error) {
	args := m.Called(ctx, lpCallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LPCall), args.Error(1)
}

func (m *MockLPCallRepository) ListLPCalls(ctx context.Context) ([]domain.LPCall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LPCall), args.Error(1)
}

func (m *MockLPCallRepository) ListPayments(ctx context.Context) ([]domain.LPPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LPPayment), args.Error(1)
}

func (m *MockLPCallRepository) FindPayment(ctx context.Context, lpCallID, investorID string) (*domain.LPPayment, error) {
	args := m.Called(ctx, lpCallID, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LPPayment), args.Error(1)
}

func (m *MockLPCallRepository) SaveLPCall(ctx context.Context, call domain.LPCall) error {
	return m.Called(ctx, call).Error(0)
}

func (m *MockLPCallRepository) DeleteLPCall(ctx context.Context, lpCallID string) error {
	return m.Called(ctx, lpCallID).Error(0)
}

func (m *MockLPCallRepository) UpsertPayment(ctx context.Context, payment domain.LPPayment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLPCallRepository) BatchSavePayments(ctx context.Context, cells []domain.PaymentCell, expected map[string]int64, userID string, now time.Time) (*domain.BatchSaveResult, error) {
	args := m.Called(ctx, cells, expected, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchSaveResult), args.Error(1)
}

// MockDocumentExtractor is a mock type for the DocumentExtractor interface
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) ExtractCapitalCall(ctx context.Context, doc domain.Document) (*domain.ExtractedCapitalCall, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedCapitalCall), args.Error(1)
}

func (m *MockDocumentExtractor) ExtractQuarterlyReport(ctx context.Context, doc domain.Document) (*domain.ExtractedQuarterlyReport, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedQuarterlyReport), args.Error(1)
}
