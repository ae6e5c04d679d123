package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// extractionService implements the ExtractionSvcFacade interface. It is the
// only place extractor output is turned into typed ledger rows: missing
// numbers become 0, missing text becomes "", unreadable dates become zero.
type extractionService struct {
	BaseService
	extractor portssvc.DocumentExtractor
	fundRepo  portsrepo.FundReader
	callRepo  portsrepo.CapitalCallRepositoryFacade
	calls     portssvc.CapitalCallSvcFacade
	reports   portssvc.QuarterlyReportSvcFacade
}

// NewExtractionService wires the document extractor to the ledgers. A nil
// extractor makes every extraction fail with apperrors.ErrUnavailable.
func NewExtractionService(
	extractor portssvc.DocumentExtractor,
	fundRepo portsrepo.FundReader,
	callRepo portsrepo.CapitalCallRepositoryFacade,
	calls portssvc.CapitalCallSvcFacade,
	reports portssvc.QuarterlyReportSvcFacade,
	options ...ServiceOption,
) portssvc.ExtractionSvcFacade {
	return &extractionService{
		BaseService: newBaseService(options...),
		extractor:   extractor,
		fundRepo:    fundRepo,
		callRepo:    callRepo,
		calls:       calls,
		reports:     reports,
	}
}

var _ portssvc.ExtractionSvcFacade = (*extractionService)(nil)

func (s *extractionService) checkReady(ctx context.Context, fundID string, doc domain.Document) error {
	if s.extractor == nil {
		return apperrors.NewUnavailableError("document extraction is not configured", nil)
	}
	if len(doc.Content) == 0 {
		return apperrors.NewValidationError("document is empty")
	}
	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("fund %s not found", fundID))
		}
		return fmt.Errorf("failed to look up fund %s: %w", fundID, err)
	}
	return nil
}

func (s *extractionService) ExtractCapitalCall(ctx context.Context, fundID string, doc domain.Document, commit bool, userID string) (*domain.CapitalCall, error) {
	if err := s.checkReady(ctx, fundID, doc); err != nil {
		return nil, err
	}

	raw, err := s.extractor.ExtractCapitalCall(ctx, doc)
	if err != nil {
		s.LogError(ctx, err, "Capital call extraction failed", slog.String("filename", doc.Filename))
		return nil, apperrors.NewUnavailableError("document extraction failed", err)
	}
	if raw == nil {
		raw = &domain.ExtractedCapitalCall{}
	}

	req := dto.RecordCapitalCallRequest{
		CallNumber:     intOrZero(raw.CallNumber),
		CallDate:       dto.Date{Time: s.dateOrZero(ctx, "call_date", raw.CallDate)},
		Amount:         decOrZero(raw.Amount),
		Investments:    decOrZero(raw.Investments),
		MgmtFee:        decOrZero(raw.MgmtFee),
		FundExpenses:   decOrZero(raw.FundExpenses),
		GPContribution: decOrZero(raw.GPContribution),
		Notes:          strOrEmpty(raw.Notes),
	}
	if pd := s.dateOrZero(ctx, "payment_date", raw.PaymentDate); !pd.IsZero() {
		req.PaymentDate = &dto.Date{Time: pd}
	}
	// A document dated in the future announces a call that has not happened yet.
	req.IsFuture = !req.CallDate.IsZero() && req.CallDate.After(s.Now())

	if !commit {
		return &domain.CapitalCall{
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
			IsFuture: req.IsFuture,
			Notes:    req.Notes,
		}, nil
	}

	if req.CallNumber == 0 {
		next, err := s.nextCallNumber(ctx, fundID)
		if err != nil {
			return nil, err
		}
		req.CallNumber = next
	}
	return s.calls.RecordCall(ctx, fundID, req, userID)
}

func (s *extractionService) ExtractQuarterlyReport(ctx context.Context, fundID string, doc domain.Document, commit bool, userID string) (*domain.QuarterlyReport, error) {
	if err := s.checkReady(ctx, fundID, doc); err != nil {
		return nil, err
	}

	raw, err := s.extractor.ExtractQuarterlyReport(ctx, doc)
	if err != nil {
		s.LogError(ctx, err, "Quarterly report extraction failed", slog.String("filename", doc.Filename))
		return nil, apperrors.NewUnavailableError("document extraction failed", err)
	}
	if raw == nil {
		raw = &domain.ExtractedQuarterlyReport{}
	}

	req := dto.UpsertQuarterlyReportRequest{
		Year:    intOrZero(raw.Year),
		Quarter: intOrZero(raw.Quarter),
		NAV:     decOrZero(raw.NAV),
		TVPI:    decOrZero(raw.TVPI),
		DPI:     decOrZero(raw.DPI),
		RVPI:    decOrZero(raw.RVPI),
		IRR:     decOrZero(raw.IRR),
		Notes:   strOrEmpty(raw.Notes),
	}
	if rd := s.dateOrZero(ctx, "report_date", raw.ReportDate); !rd.IsZero() {
		req.ReportDate = &dto.Date{Time: rd}
		if req.Year == 0 {
			req.Year = rd.Year()
		}
		if req.Quarter == 0 {
			req.Quarter = (int(rd.Month())-1)/3 + 1
		}
	}

	if !commit {
		return &domain.QuarterlyReport{
			FundID:     fundID,
			Year:       req.Year,
			Quarter:    req.Quarter,
			ReportDate: req.ReportDate.TimePtr(),
			NAV:        req.NAV,
			TVPI:       req.TVPI,
			DPI:        req.DPI,
			RVPI:       req.RVPI,
			IRR:        req.IRR,
			Notes:      req.Notes,
		}, nil
	}
	return s.reports.UpsertReport(ctx, fundID, req, userID)
}

func (s *extractionService) nextCallNumber(ctx context.Context, fundID string) (int, error) {
	existing, err := loadFundCalls(ctx, s.cache, s.callRepo, fundID)
	if err != nil {
		return 0, fmt.Errorf("failed to number extracted call: %w", err)
	}
	next := 1
	for _, c := range existing {
		if c.CallNumber >= next {
			next = c.CallNumber + 1
		}
	}
	return next, nil
}

func (s *extractionService) dateOrZero(ctx context.Context, field string, v *string) time.Time {
	if v == nil || *v == "" {
		return time.Time{}
	}
	t, err := dto.ParseDate(*v)
	if err != nil {
		s.LogWarn(ctx, "Ignoring unreadable extracted date", slog.String("field", field), slog.String("value", *v))
		return time.Time{}
	}
	return t
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func decOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
