package services

import (
	"context"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
)

// DocumentExtractor is the external best-effort document reader. Any field of
// the result may be nil.
type DocumentExtractor interface {
	ExtractCapitalCall(ctx context.Context, doc domain.Document) (*domain.ExtractedCapitalCall, error)
	ExtractQuarterlyReport(ctx context.Context, doc domain.Document) (*domain.ExtractedQuarterlyReport, error)
}

// ExtractionSvcFacade turns documents into typed ledger drafts, optionally
// recording them.
type ExtractionSvcFacade interface {
	ExtractCapitalCall(ctx context.Context, fundID string, doc domain.Document, commit bool, userID string) (*domain.CapitalCall, error)
	ExtractQuarterlyReport(ctx context.Context, fundID string, doc domain.Document, commit bool, userID string) (*domain.QuarterlyReport, error)
}

// OverviewSvcFacade builds the portfolio dashboard.
type OverviewSvcFacade interface {
	GetOverview(ctx context.Context) (*domain.Overview, error)
}
