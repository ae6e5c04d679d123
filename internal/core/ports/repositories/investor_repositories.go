package repositories

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
)

// InvestorReader defines read operations for investor data
type InvestorReader interface {
	FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)

	// ListInvestors returns all investors ordered by name.
	ListInvestors(ctx context.Context) ([]domain.Investor, error)
}

// InvestorWriter defines write operations for investor data
type InvestorWriter interface {
	SaveInvestor(ctx context.Context, investor domain.Investor) error
	UpdateInvestor(ctx context.Context, investor domain.Investor) error

	// DeleteInvestor removes the investor and its LP payment rows atomically.
	DeleteInvestor(ctx context.Context, investorID string) error
}

// InvestorRepositoryFacade combines all investor-related repository interfaces
type InvestorRepositoryFacade interface {
	InvestorReader
	InvestorWriter
}
