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
	"github.com/google/uuid"
)

// capitalCallService implements the CapitalCallSvcFacade interface
type capitalCallService struct {
	BaseService
	callRepo portsrepo.CapitalCallRepositoryFacade
	fundRepo portsrepo.FundReader
}

func NewCapitalCallService(callRepo portsrepo.CapitalCallRepositoryFacade, fundRepo portsrepo.FundReader, options ...ServiceOption) portssvc.CapitalCallSvcFacade {
	return &capitalCallService{
		BaseService: newBaseService(options...),
		callRepo:    callRepo,
		fundRepo:    fundRepo,
	}
}

var _ portssvc.CapitalCallSvcFacade = (*capitalCallService)(nil)

func (s *capitalCallService) RecordCall(ctx context.Context, fundID string, req dto.RecordCapitalCallRequest, userID string) (*domain.CapitalCall, error) {
	call := domain.CapitalCall{
		CallID:      uuid.NewString(),
		FundID:      fundID,
		CallNumber:  req.CallNumber,
		CallDate:    req.CallDate.Time,
		PaymentDate: req.PaymentDate.TimePtr(),
		Amount:      req.Amount,
		Breakdown: domain.CallBreakdown{
			Investments:    req.Investments,
			MgmtFee:        req.MgmtFee,
			FundExpenses:   req.FundExpenses,
			GPContribution: req.GPContribution,
		},
		IsFuture:    req.IsFuture,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	call.Normalize()
	if err := call.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("fund %s not found", fundID))
		}
		return nil, fmt.Errorf("failed to look up fund %s: %w", fundID, err)
	}

	// Call numbers are a convention, not a key; a repeat is recorded but flagged.
	if existing, err := loadFundCalls(ctx, s.cache, s.callRepo, fundID); err == nil {
		for _, c := range existing {
			if c.CallNumber == call.CallNumber {
				s.LogWarn(ctx, "Duplicate capital call number recorded",
					slog.String("fund_id", fundID), slog.Int("call_number", call.CallNumber))
				break
			}
		}
	}

	if err := s.callRepo.SaveCapitalCall(ctx, call); err != nil {
		s.LogError(ctx, err, "Failed to save capital call", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to save capital call: %w", err)
	}
	s.invalidate(ctx, cache.FundCallsKey(fundID))

	s.LogInfo(ctx, "Capital call recorded",
		slog.String("call_id", call.CallID),
		slog.String("fund_id", fundID),
		slog.Bool("is_future", call.IsFuture),
		slog.String("amount", call.Amount.String()))
	return &call, nil
}

func (s *capitalCallService) DeleteCall(ctx context.Context, callID string) error {
	fundID, err := s.callRepo.DeleteCapitalCall(ctx, callID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete capital call", slog.String("call_id", callID))
		}
		return fmt.Errorf("failed to delete capital call: %w", err)
	}
	s.invalidate(ctx, cache.FundCallsKey(fundID))

	s.LogInfo(ctx, "Capital call deleted", slog.String("call_id", callID), slog.String("fund_id", fundID))
	return nil
}

func (s *capitalCallService) ListCalls(ctx context.Context, fundID string) ([]domain.CapitalCall, error) {
	calls, err := loadFundCalls(ctx, s.cache, s.callRepo, fundID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list capital calls", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to list capital calls: %w", err)
	}
	return calls, nil
}

func (s *capitalCallService) ListFutureCalls(ctx context.Context, fundID string) ([]domain.CapitalCall, error) {
	calls, err := s.ListCalls(ctx, fundID)
	if err != nil {
		return nil, err
	}
	future := make([]domain.CapitalCall, 0, len(calls))
	for _, c := range calls {
		if c.IsFuture {
			future = append(future, c)
		}
	}
	return future, nil
}
