package services

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
)

// LPMatrixReaderSvc defines read operations on the LP call matrix
type LPMatrixReaderSvc interface {
	// GetSnapshot loads investors, LP calls and payments in one pass.
	GetSnapshot(ctx context.Context) (*domain.LPSnapshot, error)

	// GetMatrix reconciles required against paid for every call and investor.
	GetMatrix(ctx context.Context) (*domain.LPMatrix, error)
}

// LPMatrixWriterSvc defines write operations on the LP call matrix
type LPMatrixWriterSvc interface {
	AddLPCall(ctx context.Context, req dto.CreateLPCallRequest, userID string) (*domain.LPCall, error)
	DeleteLPCall(ctx context.Context, lpCallID string) error

	// SetPaymentStatus writes one cell. Writing the value already stored is a no-op.
	SetPaymentStatus(ctx context.Context, lpCallID, investorID string, isPaid bool, userID string) (*domain.PaymentChange, error)

	// BatchSave writes all edited cells atomically, rejecting the whole batch
	// with apperrors.ErrConflict if any touched call changed since it was read.
	BatchSave(ctx context.Context, req dto.BatchSaveRequest, userID string) (*domain.BatchSaveResult, error)
}

// LPMatrixSvcFacade combines all LP matrix service interfaces
type LPMatrixSvcFacade interface {
	LPMatrixReaderSvc
	LPMatrixWriterSvc
}
