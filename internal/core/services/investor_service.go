package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/cache"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// investorService implements the InvestorSvcFacade interface
type investorService struct {
	BaseService
	investorRepo portsrepo.InvestorRepositoryFacade
}

func NewInvestorService(repo portsrepo.InvestorRepositoryFacade, options ...ServiceOption) portssvc.InvestorSvcFacade {
	return &investorService{
		BaseService:  newBaseService(options...),
		investorRepo: repo,
	}
}

var _ portssvc.InvestorSvcFacade = (*investorService)(nil)

func (s *investorService) CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, userID string) (*domain.Investor, error) {
	inv := domain.Investor{
		InvestorID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Commitment:  req.Commitment,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	inv.Normalize()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.investorRepo.SaveInvestor(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save investor", slog.String("investor_id", inv.InvestorID))
		return nil, fmt.Errorf("failed to save investor: %w", err)
	}
	s.invalidate(ctx, cache.KeyInvestors, cache.KeySnapshot)

	s.LogInfo(ctx, "Investor created", slog.String("investor_id", inv.InvestorID))
	return &inv, nil
}

func (s *investorService) GetInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	inv, err := s.investorRepo.FindInvestorByID(ctx, investorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investor", slog.String("investor_id", investorID))
		}
		return nil, err
	}
	return inv, nil
}

func (s *investorService) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	investors, err := loadInvestors(ctx, s.cache, s.investorRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investors")
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return investors, nil
}

func (s *investorService) UpdateInvestor(ctx context.Context, investorID string, req dto.UpdateInvestorRequest, userID string) (*domain.Investor, error) {
	inv, err := s.GetInvestorByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		inv.Name = strings.TrimSpace(*req.Name)
	}
	if req.Commitment != nil {
		inv.Commitment = *req.Commitment
	}
	inv.Normalize()
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	inv.Touch(userID, s.Now())

	if err := s.investorRepo.UpdateInvestor(ctx, *inv); err != nil {
		s.LogError(ctx, err, "Failed to update investor", slog.String("investor_id", investorID))
		return nil, fmt.Errorf("failed to update investor: %w", err)
	}
	s.invalidate(ctx, cache.KeyInvestors, cache.KeySnapshot)
	return inv, nil
}

func (s *investorService) DeleteInvestor(ctx context.Context, investorID string) error {
	if err := s.investorRepo.DeleteInvestor(ctx, investorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete investor", slog.String("investor_id", investorID))
		}
		return fmt.Errorf("failed to delete investor: %w", err)
	}
	s.invalidate(ctx, cache.KeyInvestors, cache.KeySnapshot)

	s.LogInfo(ctx, "Investor deleted with its LP payments", slog.String("investor_id", investorID))
	return nil
}
