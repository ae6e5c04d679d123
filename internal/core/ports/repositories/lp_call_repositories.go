package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
)

// LPCallReader defines read operations for the LP call matrix
type LPCallReader interface {
	FindLPCallByID(ctx context.Context, lpCallID string) (*domain.LPCall, error)

	// ListLPCalls returns calls ordered by call date.
	ListLPCalls(ctx context.Context) ([]domain.LPCall, error)

	// ListPayments returns payment rows that reference an existing call.
	ListPayments(ctx context.Context) ([]domain.LPPayment, error)

	// FindPayment returns apperrors.ErrNotFound when the cell has no row.
	FindPayment(ctx context.Context, lpCallID, investorID string) (*domain.LPPayment, error)
}

// LPCallWriter defines write operations for the LP call matrix
type LPCallWriter interface {
	SaveLPCall(ctx context.Context, call domain.LPCall) error

	// DeleteLPCall removes the call and its payment rows atomically.
	DeleteLPCall(ctx context.Context, lpCallID string) error

	// UpsertPayment writes one cell and bumps the call revision. It returns the
	// new revision.
	UpsertPayment(ctx context.Context, payment domain.LPPayment) (int64, error)

	// BatchSavePayments writes all cells in one transaction after checking each
	// touched call against expected revisions. On any mismatch nothing is
	// written and apperrors.ErrConflict is returned.
	BatchSavePayments(ctx context.Context, cells []domain.PaymentCell, expected map[string]int64, userID string, now time.Time) (*domain.BatchSaveResult, error)
}

// LPCallRepositoryFacade combines all LP call repository interfaces
type LPCallRepositoryFacade interface {
	LPCallReader
	LPCallWriter
}
