package handlers_test

import (
	"context"
	"errors"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock FundService ---
type MockFundService struct {
	mock.Mock
}

func (m *MockFundService) GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}
func (m *MockFundService) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fund), args.Error(1)
}
func (m *MockFundService) GetFundSummary(ctx context.Context, fundID string) (*domain.FundSummary, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundSummary), args.Error(1)
}
func (m *MockFundService) CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.Fund, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}
func (m *MockFundService) UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}
func (m *MockFundService) DeleteFund(ctx context.Context, fundID string) error {
	args := m.Called(ctx, fundID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.FundSvcFacade = (*MockFundService)(nil)

// --- Mock CapitalCallService ---
type MockCapitalCallService struct {
	mock.Mock
}

func (m *MockCapitalCallService) RecordCall(ctx context.Context, fundID string, req dto.RecordCapitalCallRequest, userID string) (*domain.CapitalCall, error) {
	args := m.Called(ctx, fundID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalCall), args.Error(1)
}
func (m *MockCapitalCallService) DeleteCall(ctx context.Context, callID string) error {
	args := m.Called(ctx, callID)
	return args.Error(0)
}
func (m *MockCapitalCallService) ListCalls(ctx context.Context, fundID string) ([]domain.CapitalCall, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalCall), args.Error(1)
}
func (m *MockCapitalCallService) ListFutureCalls(ctx context.Context, fundID string) ([]domain.CapitalCall, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalCall), args.Error(1)
}

var _ portssvc.CapitalCallSvcFacade = (*MockCapitalCallService)(nil)

// --- Mock LPMatrixService ---
type MockLPMatrixService struct {
	mock.Mock
}

func (m *MockLPMatrixService) GetSnapshot(ctx context.Context) (*domain.LPSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LPSnapshot), args.Error(1)
}
func (m *MockLPMatrixService) GetMatrix(ctx context.Context) (*domain.LPMatrix, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LPMatrix), args.Error(1)
}
func (m *MockLPMatrixService) AddLPCall(ctx context.Context, req dto.CreateLPCallRequest, userID string) (*domain.LPCall, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LPCall), args.Error(1)
}
func (m *MockLPMatrixService) DeleteLPCall(ctx context.Context, lpCallID string) error {
	args := m.Called(ctx, lpCallID)
	return args.Error(0)
}
func (m *MockLPMatrixService) SetPaymentStatus(ctx context.Context, lpCallID, investorID string, isPaid bool, userID string) (*domain.PaymentChange, error) {
	args := m.Called(ctx, lpCallID, investorID, isPaid, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentChange), args.Error(1)
}
func (m *MockLPMatrixService) BatchSave(ctx context.Context, req dto.BatchSaveRequest, userID string) (*domain.BatchSaveResult, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchSaveResult), args.Error(1)
}

var _ portssvc.LPMatrixSvcFacade = (*MockLPMatrixService)(nil)

// --- Mock ExtractionService ---
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractCapitalCall(ctx context.Context, fundID string, doc domain.Document, commit bool, userID string) (*domain.CapitalCall, error) {
	args := m.Called(ctx, fundID, doc, commit, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapitalCall), args.Error(1)
}
func (m *MockExtractionService) ExtractQuarterlyReport(ctx context.Context, fundID string, doc domain.Document, commit bool, userID string) (*domain.QuarterlyReport, error) {
	args := m.Called(ctx, fundID, doc, commit, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuarterlyReport), args.Error(1)
}

var _ portssvc.ExtractionSvcFacade = (*MockExtractionService)(nil)

// --- Mock OverviewService ---
type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) GetOverview(ctx context.Context) (*domain.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

var _ portssvc.OverviewSvcFacade = (*MockOverviewService)(nil)

var assertErr = errors.New("connection refused")
