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

// quarterlyReportService implements the QuarterlyReportSvcFacade interface
type quarterlyReportService struct {
	BaseService
	reportRepo portsrepo.QuarterlyReportRepositoryFacade
	fundRepo   portsrepo.FundReader
}

func NewQuarterlyReportService(reportRepo portsrepo.QuarterlyReportRepositoryFacade, fundRepo portsrepo.FundReader, options ...ServiceOption) portssvc.QuarterlyReportSvcFacade {
	return &quarterlyReportService{
		BaseService: newBaseService(options...),
		reportRepo:  reportRepo,
		fundRepo:    fundRepo,
	}
}

var _ portssvc.QuarterlyReportSvcFacade = (*quarterlyReportService)(nil)

func (s *quarterlyReportService) UpsertReport(ctx context.Context, fundID string, req dto.UpsertQuarterlyReportRequest, userID string) (*domain.QuarterlyReport, error) {
	report := domain.QuarterlyReport{
		ReportID:    uuid.NewString(),
		FundID:      fundID,
		Year:        req.Year,
		Quarter:     req.Quarter,
		ReportDate:  req.ReportDate.TimePtr(),
		NAV:         req.NAV,
		TVPI:        req.TVPI,
		DPI:         req.DPI,
		RVPI:        req.RVPI,
		IRR:         req.IRR,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	report.Normalize()
	if err := report.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("fund %s not found", fundID))
		}
		return nil, fmt.Errorf("failed to look up fund %s: %w", fundID, err)
	}

	stored, err := s.reportRepo.UpsertReport(ctx, report)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert quarterly report",
			slog.String("fund_id", fundID), slog.String("period", report.Period()))
		return nil, fmt.Errorf("failed to save quarterly report: %w", err)
	}
	s.invalidate(ctx, cache.FundReportsKey(fundID))

	s.LogInfo(ctx, "Quarterly report saved",
		slog.String("report_id", stored.ReportID),
		slog.String("fund_id", fundID),
		slog.String("period", stored.Period()))
	return stored, nil
}

func (s *quarterlyReportService) DeleteReport(ctx context.Context, reportID string) error {
	fundID, err := s.reportRepo.DeleteReport(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete quarterly report", slog.String("report_id", reportID))
		}
		return fmt.Errorf("failed to delete quarterly report: %w", err)
	}
	s.invalidate(ctx, cache.FundReportsKey(fundID))
	return nil
}

func (s *quarterlyReportService) ListReports(ctx context.Context, fundID string) ([]domain.QuarterlyReport, error) {
	reports, err := loadFundReports(ctx, s.cache, s.reportRepo, fundID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quarterly reports", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to list quarterly reports: %w", err)
	}
	return reports, nil
}
