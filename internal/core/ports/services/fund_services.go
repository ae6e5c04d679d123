package services

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
)

// FundReaderSvc defines read operations for fund data
type FundReaderSvc interface {
	GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// ListFunds returns all funds ordered by name.
	ListFunds(ctx context.Context) ([]domain.Fund, error)

	// GetFundSummary recomputes the fund's rollup from its current ledgers.
	GetFundSummary(ctx context.Context, fundID string) (*domain.FundSummary, error)
}

// FundWriterSvc defines write operations for fund data
type FundWriterSvc interface {
	CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.Fund, error)
	UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error)

	// DeleteFund removes the fund and everything it owns.
	DeleteFund(ctx context.Context, fundID string) error
}

// FundSvcFacade combines all fund-related service interfaces
type FundSvcFacade interface {
	FundReaderSvc
	FundWriterSvc
}

// InvestorSvcFacade manages the limited partners of the master fund.
type InvestorSvcFacade interface {
	GetInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)
	ListInvestors(ctx context.Context) ([]domain.Investor, error)
	CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, userID string) (*domain.Investor, error)
	UpdateInvestor(ctx context.Context, investorID string, req dto.UpdateInvestorRequest, userID string) (*domain.Investor, error)
	DeleteInvestor(ctx context.Context, investorID string) error
}
