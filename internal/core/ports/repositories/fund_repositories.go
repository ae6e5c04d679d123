package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
)

// FundReader defines read operations for fund data
type FundReader interface {
	// FindFundByID returns apperrors.ErrNotFound when the fund does not exist.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// ListFunds returns all funds ordered by name.
	ListFunds(ctx context.Context) ([]domain.Fund, error)
}

// FundWriter defines write operations for fund data
type FundWriter interface {
	SaveFund(ctx context.Context, fund domain.Fund) error
	UpdateFund(ctx context.Context, fund domain.Fund) error

	// DeleteFund removes the fund with its capital calls, distributions and
	// quarterly reports in a single transaction.
	DeleteFund(ctx context.Context, fundID string) error
}

// FundRepositoryFacade combines all fund-related repository interfaces
type FundRepositoryFacade interface {
	FundReader
	FundWriter
}
