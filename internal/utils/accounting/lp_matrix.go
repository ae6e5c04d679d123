package accounting

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CallFraction converts an LP call percentage into a fraction of commitment.
func CallFraction(call domain.LPCall) decimal.Decimal {
	return call.CallPct.Div(hundred)
}

// CommitmentBase is the sum of all investor commitments.
func CommitmentBase(investors []domain.Investor) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investors {
		total = total.Add(inv.Commitment)
	}
	return total
}

// TotalCallPct sums the percentages of all LP calls.
func TotalCallPct(calls []domain.LPCall) decimal.Decimal {
	total := decimal.Zero
	for _, c := range calls {
		total = total.Add(c.CallPct)
	}
	return total
}

// Required is an investor's share of an LP call.
func Required(investor domain.Investor, call domain.LPCall) decimal.Decimal {
	return investor.Commitment.Mul(CallFraction(call))
}

// RequiredTotal is the amount an LP call asks of all investors together.
func RequiredTotal(investors []domain.Investor, call domain.LPCall) decimal.Decimal {
	return CommitmentBase(investors).Mul(CallFraction(call))
}

// PaymentLookup answers paid/unpaid for any matrix cell. Cells without a row
// are unpaid.
type PaymentLookup map[domain.PaymentKey]bool

// NewPaymentLookup indexes payments, keeping only rows whose call and investor
// still exist in the snapshot.
func NewPaymentLookup(snap domain.LPSnapshot) PaymentLookup {
	calls := make(map[string]struct{}, len(snap.Calls))
	for _, c := range snap.Calls {
		calls[c.LPCallID] = struct{}{}
	}
	investors := make(map[string]struct{}, len(snap.Investors))
	for _, inv := range snap.Investors {
		investors[inv.InvestorID] = struct{}{}
	}

	lookup := make(PaymentLookup, len(snap.Payments))
	for _, p := range snap.Payments {
		if _, ok := calls[p.LPCallID]; !ok {
			continue
		}
		if _, ok := investors[p.InvestorID]; !ok {
			continue
		}
		lookup[p.Key()] = p.IsPaid
	}
	return lookup
}

// IsPaid is total over the matrix: a missing cell reads as false.
func (l PaymentLookup) IsPaid(lpCallID, investorID string) bool {
	return l[domain.PaymentKey{LPCallID: lpCallID, InvestorID: investorID}]
}

// PaidTotal is the paid-in amount for an LP call.
func PaidTotal(investors []domain.Investor, call domain.LPCall, lookup PaymentLookup) decimal.Decimal {
	paidBase := decimal.Zero
	for _, inv := range investors {
		if lookup.IsPaid(call.LPCallID, inv.InvestorID) {
			paidBase = paidBase.Add(inv.Commitment)
		}
	}
	return paidBase.Mul(CallFraction(call))
}

// Outstanding is what remains to be collected for an LP call.
func Outstanding(investors []domain.Investor, call domain.LPCall, lookup PaymentLookup) decimal.Decimal {
	return RequiredTotal(investors, call).Sub(PaidTotal(investors, call, lookup))
}

// ReconcileLPMatrix computes every aggregate of the payment matrix from a full
// snapshot. With no investors all amounts are zero.
func ReconcileLPMatrix(snap domain.LPSnapshot) domain.LPMatrix {
	lookup := NewPaymentLookup(snap)

	matrix := domain.LPMatrix{
		CommitmentBase:   CommitmentBase(snap.Investors),
		TotalCallPct:     TotalCallPct(snap.Calls),
		Calls:            make([]domain.LPCallReconciliation, 0, len(snap.Calls)),
		Investors:        make([]domain.InvestorTotals, 0, len(snap.Investors)),
		RequiredTotal:    decimal.Zero,
		PaidTotal:        decimal.Zero,
		OutstandingTotal: decimal.Zero,
	}

	perInvestor := make(map[string]*domain.InvestorTotals, len(snap.Investors))
	for _, inv := range snap.Investors {
		matrix.Investors = append(matrix.Investors, domain.InvestorTotals{
			Investor:    inv,
			Required:    decimal.Zero,
			Paid:        decimal.Zero,
			Outstanding: decimal.Zero,
			CalledPct:   matrix.TotalCallPct,
		})
	}
	for i := range matrix.Investors {
		perInvestor[matrix.Investors[i].Investor.InvestorID] = &matrix.Investors[i]
	}

	for _, call := range snap.Calls {
		rec := domain.LPCallReconciliation{
			Call:          call,
			RequiredTotal: RequiredTotal(snap.Investors, call),
			PaidTotal:     PaidTotal(snap.Investors, call, lookup),
			Cells:         make([]domain.LPCellStatus, 0, len(snap.Investors)),
		}
		rec.Outstanding = rec.RequiredTotal.Sub(rec.PaidTotal)

		for _, inv := range snap.Investors {
			req := Required(inv, call)
			paid := lookup.IsPaid(call.LPCallID, inv.InvestorID)
			rec.Cells = append(rec.Cells, domain.LPCellStatus{
				InvestorID: inv.InvestorID,
				IsPaid:     paid,
				Required:   req,
			})

			totals := perInvestor[inv.InvestorID]
			totals.Required = totals.Required.Add(req)
			if paid {
				totals.Paid = totals.Paid.Add(req)
			}
		}

		matrix.RequiredTotal = matrix.RequiredTotal.Add(rec.RequiredTotal)
		matrix.PaidTotal = matrix.PaidTotal.Add(rec.PaidTotal)
		matrix.Calls = append(matrix.Calls, rec)
	}

	for i := range matrix.Investors {
		matrix.Investors[i].Outstanding = matrix.Investors[i].Required.Sub(matrix.Investors[i].Paid)
	}
	matrix.OutstandingTotal = matrix.RequiredTotal.Sub(matrix.PaidTotal)
	return matrix
}
