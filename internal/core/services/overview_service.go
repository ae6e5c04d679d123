package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// overviewService implements the OverviewSvcFacade interface
type overviewService struct {
	BaseService
	fundRepo portsrepo.FundReader
	callRepo portsrepo.CapitalCallRepositoryFacade
	distRepo portsrepo.DistributionRepositoryFacade
}

func NewOverviewService(fundRepo portsrepo.FundReader, callRepo portsrepo.CapitalCallRepositoryFacade, distRepo portsrepo.DistributionRepositoryFacade, options ...ServiceOption) portssvc.OverviewSvcFacade {
	return &overviewService{
		BaseService: newBaseService(options...),
		fundRepo:    fundRepo,
		callRepo:    callRepo,
		distRepo:    distRepo,
	}
}

var _ portssvc.OverviewSvcFacade = (*overviewService)(nil)

// GetOverview totals the portfolio per currency. Amounts in different
// currencies are reported side by side, never converted.
func (s *overviewService) GetOverview(ctx context.Context) (*domain.Overview, error) {
	var (
		funds []domain.Fund
		calls []domain.CapitalCall
		dists []domain.Distribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		funds, err = loadFunds(gctx, s.cache, s.fundRepo)
		return err
	})
	g.Go(func() (err error) {
		calls, err = s.callRepo.ListCapitalCalls(gctx)
		return err
	})
	g.Go(func() (err error) {
		dists, err = s.distRepo.ListDistributions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load portfolio overview")
		return nil, fmt.Errorf("failed to load overview: %w", err)
	}

	callsByFund := make(map[string][]domain.CapitalCall)
	for _, c := range calls {
		callsByFund[c.FundID] = append(callsByFund[c.FundID], c)
	}
	distsByFund := make(map[string][]domain.Distribution)
	for _, d := range dists {
		distsByFund[d.FundID] = append(distsByFund[d.FundID], d)
	}

	overview := &domain.Overview{
		FundsByStatus: map[domain.FundStatus]int{
			domain.FundActive: 0,
			domain.FundClosed: 0,
			domain.FundExited: 0,
		},
		Totals:        []domain.CurrencyTotals{},
		UpcomingCalls: []domain.UpcomingCall{},
	}
	totals := make(map[string]*domain.CurrencyTotals)
	today := s.Now().Truncate(24 * time.Hour)

	for _, f := range funds {
		overview.FundsByStatus[f.Status]++
		if f.Status == domain.FundActive {
			overview.ActiveFunds++
		}

		t, ok := totals[f.CurrencyCode]
		if !ok {
			t = &domain.CurrencyTotals{
				CurrencyCode:     f.CurrencyCode,
				Commitment:       decimal.Zero,
				TotalCalled:      decimal.Zero,
				TotalDistributed: decimal.Zero,
				Uncalled:         decimal.Zero,
			}
			totals[f.CurrencyCode] = t
		}
		summary := accounting.SummarizeFund(f, callsByFund[f.FundID], distsByFund[f.FundID], nil)
		t.FundCount++
		t.Commitment = t.Commitment.Add(f.Commitment)
		t.TotalCalled = t.TotalCalled.Add(summary.TotalCalled)
		t.TotalDistributed = t.TotalDistributed.Add(summary.TotalDistributed)
		t.Uncalled = t.Uncalled.Add(summary.Uncalled)

		for _, c := range callsByFund[f.FundID] {
			due, ok := upcomingDueDate(c)
			if !ok || due.Before(today) {
				continue
			}
			overview.UpcomingCalls = append(overview.UpcomingCalls, domain.UpcomingCall{
				FundID:       f.FundID,
				FundName:     f.Name,
				CurrencyCode: f.CurrencyCode,
				CallNumber:   c.CallNumber,
				DueDate:      due,
				Amount:       c.Amount,
				IsFuture:     c.IsFuture,
			})
		}
	}

	for _, t := range totals {
		overview.Totals = append(overview.Totals, *t)
	}
	sort.Slice(overview.Totals, func(i, j int) bool {
		return overview.Totals[i].CurrencyCode < overview.Totals[j].CurrencyCode
	})
	sort.SliceStable(overview.UpcomingCalls, func(i, j int) bool {
		return overview.UpcomingCalls[i].DueDate.Before(overview.UpcomingCalls[j].DueDate)
	})
	return overview, nil
}

// upcomingDueDate returns the date a call falls due. Realized calls only have
// one when a payment date was recorded.
func upcomingDueDate(c domain.CapitalCall) (time.Time, bool) {
	if c.PaymentDate != nil {
		return *c.PaymentDate, true
	}
	if c.IsFuture {
		return c.CallDate, true
	}
	return time.Time{}, false
}
