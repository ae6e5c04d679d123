package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/cache"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// lpMatrixService implements the LPMatrixSvcFacade interface
type lpMatrixService struct {
	BaseService
	investorRepo portsrepo.InvestorReader
	lpRepo       portsrepo.LPCallRepositoryFacade
	enforceCap   bool
}

// NewLPMatrixService creates the LP call and payment matrix service. When
// enforceCap is set the sum of all call percentages may not exceed 100.
func NewLPMatrixService(investorRepo portsrepo.InvestorReader, lpRepo portsrepo.LPCallRepositoryFacade, enforceCap bool, options ...ServiceOption) portssvc.LPMatrixSvcFacade {
	return &lpMatrixService{
		BaseService:  newBaseService(options...),
		investorRepo: investorRepo,
		lpRepo:       lpRepo,
		enforceCap:   enforceCap,
	}
}

var _ portssvc.LPMatrixSvcFacade = (*lpMatrixService)(nil)

func (s *lpMatrixService) GetSnapshot(ctx context.Context) (*domain.LPSnapshot, error) {
	snap, err := cache.Load(ctx, s.cache, cache.KeySnapshot, s.loadSnapshot)
	if err != nil {
		s.LogError(ctx, err, "Failed to load LP snapshot")
		return nil, fmt.Errorf("failed to load LP matrix: %w", err)
	}
	return &snap, nil
}

// loadSnapshot reads the three tables concurrently; the matrix is never
// assembled from per-cell lookups.
func (s *lpMatrixService) loadSnapshot(ctx context.Context) (domain.LPSnapshot, error) {
	var snap domain.LPSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Investors, err = s.investorRepo.ListInvestors(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Calls, err = s.lpRepo.ListLPCalls(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Payments, err = s.lpRepo.ListPayments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.LPSnapshot{}, err
	}
	if snap.Investors == nil {
		snap.Investors = []domain.Investor{}
	}
	if snap.Calls == nil {
		snap.Calls = []domain.LPCall{}
	}
	if snap.Payments == nil {
		snap.Payments = []domain.LPPayment{}
	}
	return snap, nil
}

func (s *lpMatrixService) GetMatrix(ctx context.Context) (*domain.LPMatrix, error) {
	snap, err := s.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	matrix := accounting.ReconcileLPMatrix(*snap)
	s.LogDebug(ctx, "LP matrix reconciled",
		slog.Int("investors", len(snap.Investors)),
		slog.Int("calls", len(snap.Calls)),
		slog.String("outstanding", matrix.OutstandingTotal.String()))
	return &matrix, nil
}

func (s *lpMatrixService) AddLPCall(ctx context.Context, req dto.CreateLPCallRequest, userID string) (*domain.LPCall, error) {
	call := domain.LPCall{
		LPCallID:    uuid.NewString(),
		CallDate:    req.CallDate.Time,
		CallPct:     req.CallPct,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	call.Normalize()
	if err := call.Validate(); err != nil {
		return nil, err
	}

	if s.enforceCap {
		existing, err := s.lpRepo.ListLPCalls(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to read LP calls for cap check")
			return nil, fmt.Errorf("failed to check LP call cap: %w", err)
		}
		total := accounting.TotalCallPct(existing).Add(call.CallPct)
		if total.GreaterThan(domain.MaxCallPct) {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"LP calls would total %s%% of commitments, above the 100%% cap", total.String()))
		}
	}

	if err := s.lpRepo.SaveLPCall(ctx, call); err != nil {
		s.LogError(ctx, err, "Failed to save LP call")
		return nil, fmt.Errorf("failed to save LP call: %w", err)
	}
	s.invalidate(ctx, cache.KeySnapshot)

	s.LogInfo(ctx, "LP call added", slog.String("lp_call_id", call.LPCallID), slog.String("call_pct", call.CallPct.String()))
	return &call, nil
}

func (s *lpMatrixService) DeleteLPCall(ctx context.Context, lpCallID string) error {
	if err := s.lpRepo.DeleteLPCall(ctx, lpCallID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete LP call", slog.String("lp_call_id", lpCallID))
		}
		return fmt.Errorf("failed to delete LP call: %w", err)
	}
	s.invalidate(ctx, cache.KeySnapshot)

	s.LogInfo(ctx, "LP call deleted with its payments", slog.String("lp_call_id", lpCallID))
	return nil
}

func (s *lpMatrixService) SetPaymentStatus(ctx context.Context, lpCallID, investorID string, isPaid bool, userID string) (*domain.PaymentChange, error) {
	call, err := s.lpRepo.FindLPCallByID(ctx, lpCallID)
	if err != nil {
		return nil, err
	}
	if _, err := s.investorRepo.FindInvestorByID(ctx, investorID); err != nil {
		return nil, err
	}

	change := &domain.PaymentChange{
		LPCallID:   lpCallID,
		InvestorID: investorID,
		IsPaid:     isPaid,
		Revision:   call.Revision,
	}

	// An absent row reads as unpaid.
	current, err := s.lpRepo.FindPayment(ctx, lpCallID, investorID)
	switch {
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to read payment cell", slog.String("lp_call_id", lpCallID))
		return nil, fmt.Errorf("failed to read payment status: %w", err)
	case err != nil:
		current = nil
	}
	if (current != nil && current.IsPaid == isPaid) || (current == nil && !isPaid) {
		s.LogDebug(ctx, "Payment status unchanged, skipping write",
			slog.String("lp_call_id", lpCallID), slog.String("investor_id", investorID))
		return change, nil
	}

	payment := domain.LPPayment{
		PaymentID:   uuid.NewString(),
		LPCallID:    lpCallID,
		InvestorID:  investorID,
		IsPaid:      isPaid,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if current != nil {
		payment.PaymentID = current.PaymentID
		payment.CreatedAt = current.CreatedAt
		payment.CreatedBy = current.CreatedBy
	}

	revision, err := s.lpRepo.UpsertPayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to write payment status",
			slog.String("lp_call_id", lpCallID), slog.String("investor_id", investorID))
		return nil, fmt.Errorf("failed to save payment status: %w", err)
	}
	s.invalidate(ctx, cache.KeySnapshot)

	change.Changed = true
	change.Revision = revision
	s.LogInfo(ctx, "Payment status set",
		slog.String("lp_call_id", lpCallID),
		slog.String("investor_id", investorID),
		slog.Bool("is_paid", isPaid))
	return change, nil
}

func (s *lpMatrixService) BatchSave(ctx context.Context, req dto.BatchSaveRequest, userID string) (*domain.BatchSaveResult, error) {
	if len(req.Cells) == 0 {
		return nil, apperrors.NewValidationError("batch contains no cells")
	}

	seen := make(map[domain.PaymentKey]struct{}, len(req.Cells))
	for _, cell := range req.Cells {
		if cell.LPCallID == "" || cell.InvestorID == "" {
			return nil, apperrors.NewValidationError("every cell needs an lpCallID and an investorID")
		}
		key := domain.PaymentKey{LPCallID: cell.LPCallID, InvestorID: cell.InvestorID}
		if _, dup := seen[key]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf("cell (%s, %s) appears more than once", cell.LPCallID, cell.InvestorID))
		}
		seen[key] = struct{}{}
		if _, ok := req.ExpectedRevisions[cell.LPCallID]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("missing expected revision for LP call %s", cell.LPCallID))
		}
	}

	result, err := s.lpRepo.BatchSavePayments(ctx, req.Cells, req.ExpectedRevisions, userID, s.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Batch save rejected, matrix changed since it was read", slog.String("error", err.Error()))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Batch save failed, nothing written", slog.Int("cells", len(req.Cells)))
		}
		return nil, fmt.Errorf("failed to save payment matrix: %w", err)
	}
	if result.Written > 0 {
		s.invalidate(ctx, cache.KeySnapshot)
	}

	s.LogInfo(ctx, "Payment matrix saved", slog.Int("written", result.Written), slog.Int("unchanged", result.Unchanged))
	return result, nil
}
