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
	"github.com/SscSPs/fund_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// fundService implements the FundSvcFacade interface
type fundService struct {
	BaseService
	fundRepo   portsrepo.FundRepositoryFacade
	callRepo   portsrepo.CapitalCallRepositoryFacade
	distRepo   portsrepo.DistributionRepositoryFacade
	reportRepo portsrepo.QuarterlyReportRepositoryFacade
}

// NewFundService creates the commitment registry service for funds.
func NewFundService(
	fundRepo portsrepo.FundRepositoryFacade,
	callRepo portsrepo.CapitalCallRepositoryFacade,
	distRepo portsrepo.DistributionRepositoryFacade,
	reportRepo portsrepo.QuarterlyReportRepositoryFacade,
	options ...ServiceOption,
) portssvc.FundSvcFacade {
	return &fundService{
		BaseService: newBaseService(options...),
		fundRepo:    fundRepo,
		callRepo:    callRepo,
		distRepo:    distRepo,
		reportRepo:  reportRepo,
	}
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

func (s *fundService) CreateFund(ctx context.Context, req dto.CreateFundRequest, userID string) (*domain.Fund, error) {
	status := req.Status
	if status == "" {
		status = domain.FundActive
	}

	fund := domain.Fund{
		FundID:          uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Manager:         req.Manager,
		Strategy:        req.Strategy,
		Commitment:      req.Commitment,
		CurrencyCode:    strings.ToUpper(strings.TrimSpace(req.CurrencyCode)),
		Status:          status,
		VintageYear:     req.VintageYear,
		InvestmentDate:  req.InvestmentDate.TimePtr(),
		GeographicFocus: req.GeographicFocus,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}
	fund.Normalize()
	if err := fund.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected fund", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.fundRepo.SaveFund(ctx, fund); err != nil {
		s.LogError(ctx, err, "Failed to save fund", slog.String("fund_id", fund.FundID))
		return nil, fmt.Errorf("failed to save fund: %w", err)
	}
	s.invalidate(ctx, cache.KeyFunds)

	s.LogInfo(ctx, "Fund created", slog.String("fund_id", fund.FundID), slog.String("currency", fund.CurrencyCode))
	return &fund, nil
}

func (s *fundService) GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fund", slog.String("fund_id", fundID))
		}
		return nil, err
	}
	return fund, nil
}

func (s *fundService) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	funds, err := loadFunds(ctx, s.cache, s.fundRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds")
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	s.LogDebug(ctx, "Funds listed", slog.Int("count", len(funds)))
	return funds, nil
}

func (s *fundService) UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error) {
	fund, err := s.GetFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		fund.Name = strings.TrimSpace(*req.Name)
	}
	if req.Manager != nil {
		fund.Manager = *req.Manager
	}
	if req.Strategy != nil {
		fund.Strategy = *req.Strategy
	}
	if req.Commitment != nil {
		fund.Commitment = *req.Commitment
	}
	if req.CurrencyCode != nil {
		fund.CurrencyCode = strings.ToUpper(strings.TrimSpace(*req.CurrencyCode))
	}
	if req.Status != nil {
		fund.Status = *req.Status
	}
	if req.VintageYear != nil {
		fund.VintageYear = *req.VintageYear
	}
	if req.InvestmentDate != nil {
		fund.InvestmentDate = req.InvestmentDate.TimePtr()
	}
	if req.GeographicFocus != nil {
		fund.GeographicFocus = *req.GeographicFocus
	}
	fund.Normalize()
	if err := fund.Validate(); err != nil {
		return nil, err
	}
	fund.Touch(userID, s.Now())

	if err := s.fundRepo.UpdateFund(ctx, *fund); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update fund", slog.String("fund_id", fundID))
		}
		return nil, fmt.Errorf("failed to update fund: %w", err)
	}
	s.invalidate(ctx, cache.KeyFunds)

	s.LogInfo(ctx, "Fund updated", slog.String("fund_id", fundID))
	return fund, nil
}

func (s *fundService) DeleteFund(ctx context.Context, fundID string) error {
	if err := s.fundRepo.DeleteFund(ctx, fundID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete fund", slog.String("fund_id", fundID))
		}
		return fmt.Errorf("failed to delete fund: %w", err)
	}
	s.invalidate(ctx, append(cache.FundKeys(fundID), cache.KeyFunds)...)

	s.LogInfo(ctx, "Fund deleted with its ledgers", slog.String("fund_id", fundID))
	return nil
}

func (s *fundService) GetFundSummary(ctx context.Context, fundID string) (*domain.FundSummary, error) {
	fund, err := s.GetFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	var (
		calls   []domain.CapitalCall
		dists   []domain.Distribution
		reports []domain.QuarterlyReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		calls, err = loadFundCalls(gctx, s.cache, s.callRepo, fundID)
		return err
	})
	g.Go(func() (err error) {
		dists, err = loadFundDistributions(gctx, s.cache, s.distRepo, fundID)
		return err
	})
	g.Go(func() (err error) {
		reports, err = loadFundReports(gctx, s.cache, s.reportRepo, fundID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load fund ledgers", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to load ledgers for fund %s: %w", fundID, err)
	}

	summary := accounting.SummarizeFund(*fund, calls, dists, reports)
	if summary.OverCalled {
		s.LogWarn(ctx, "Fund is over-called", slog.String("fund_id", fundID), slog.String("uncalled", summary.Uncalled.String()))
	}
	return &summary, nil
}
