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

// distributionService implements the DistributionSvcFacade interface
type distributionService struct {
	BaseService
	distRepo portsrepo.DistributionRepositoryFacade
	fundRepo portsrepo.FundReader
}

func NewDistributionService(distRepo portsrepo.DistributionRepositoryFacade, fundRepo portsrepo.FundReader, options ...ServiceOption) portssvc.DistributionSvcFacade {
	return &distributionService{
		BaseService: newBaseService(options...),
		distRepo:    distRepo,
		fundRepo:    fundRepo,
	}
}

var _ portssvc.DistributionSvcFacade = (*distributionService)(nil)

func (s *distributionService) RecordDistribution(ctx context.Context, fundID string, req dto.RecordDistributionRequest, userID string) (*domain.Distribution, error) {
	dist := domain.Distribution{
		DistributionID: uuid.NewString(),
		FundID:         fundID,
		DistNumber:     req.DistNumber,
		DistDate:       req.DistDate.Time,
		Amount:         req.Amount,
		DistType:       req.DistType,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}
	dist.Normalize()
	if err := dist.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("fund %s not found", fundID))
		}
		return nil, fmt.Errorf("failed to look up fund %s: %w", fundID, err)
	}

	if err := s.distRepo.SaveDistribution(ctx, dist); err != nil {
		s.LogError(ctx, err, "Failed to save distribution", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to save distribution: %w", err)
	}
	s.invalidate(ctx, cache.FundDistributionsKey(fundID))

	s.LogInfo(ctx, "Distribution recorded",
		slog.String("distribution_id", dist.DistributionID),
		slog.String("fund_id", fundID),
		slog.String("type", string(dist.DistType)))
	return &dist, nil
}

func (s *distributionService) DeleteDistribution(ctx context.Context, distributionID string) error {
	fundID, err := s.distRepo.DeleteDistribution(ctx, distributionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete distribution", slog.String("distribution_id", distributionID))
		}
		return fmt.Errorf("failed to delete distribution: %w", err)
	}
	s.invalidate(ctx, cache.FundDistributionsKey(fundID))
	return nil
}

func (s *distributionService) ListDistributions(ctx context.Context, fundID string) ([]domain.Distribution, error) {
	dists, err := loadFundDistributions(ctx, s.cache, s.distRepo, fundID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list distributions", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}
	return dists, nil
}
