package accounting

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalCalled sums realized call amounts. Future calls are forecasts and are excluded.
func TotalCalled(calls []domain.CapitalCall) decimal.Decimal {
	total := decimal.Zero
	for _, c := range calls {
		if c.IsFuture {
			continue
		}
		total = total.Add(c.Amount)
	}
	return total
}

// FutureCalled sums forecast call amounts.
func FutureCalled(calls []domain.CapitalCall) decimal.Decimal {
	total := decimal.Zero
	for _, c := range calls {
		if c.IsFuture {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// Uncalled returns commitment minus the realized called total. The result is
// not floored at zero; a negative value means the fund is over-called.
func Uncalled(commitment decimal.Decimal, calls []domain.CapitalCall) decimal.Decimal {
	return commitment.Sub(TotalCalled(calls))
}

// CalledPct returns totalCalled as a percentage of commitment, or nil when the
// commitment is not positive.
func CalledPct(commitment, totalCalled decimal.Decimal) *decimal.Decimal {
	if !commitment.IsPositive() {
		return nil
	}
	pct := totalCalled.Div(commitment).Mul(hundred)
	return &pct
}

// TotalDistributed sums all distribution amounts regardless of type.
func TotalDistributed(dists []domain.Distribution) decimal.Decimal {
	total := decimal.Zero
	for _, d := range dists {
		total = total.Add(d.Amount)
	}
	return total
}

// LatestReport returns the most recent report by (year, quarter), or nil.
func LatestReport(reports []domain.QuarterlyReport) *domain.QuarterlyReport {
	var latest *domain.QuarterlyReport
	for i := range reports {
		if latest == nil || latest.Before(reports[i]) {
			latest = &reports[i]
		}
	}
	if latest == nil {
		return nil
	}
	r := *latest
	return &r
}

// SummarizeFund derives the fund rollup from its current ledger rows.
func SummarizeFund(fund domain.Fund, calls []domain.CapitalCall, dists []domain.Distribution, reports []domain.QuarterlyReport) domain.FundSummary {
	called := TotalCalled(calls)
	uncalled := fund.Commitment.Sub(called)
	return domain.FundSummary{
		Fund:             fund,
		TotalCalled:      called,
		FutureCalled:     FutureCalled(calls),
		Uncalled:         uncalled,
		CalledPct:        CalledPct(fund.Commitment, called),
		TotalDistributed: TotalDistributed(dists),
		OverCalled:       uncalled.IsNegative(),
		LatestReport:     LatestReport(reports),
	}
}
