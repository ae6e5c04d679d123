package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoInvestorSnapshot() domain.LPSnapshot {
	return domain.LPSnapshot{
		Investors: []domain.Investor{
			{InvestorID: "A", Name: "A", Commitment: dec("1000000")},
			{InvestorID: "B", Name: "B", Commitment: dec("2000000")},
		},
		Calls: []domain.LPCall{
			{LPCallID: "call-1", CallDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), CallPct: dec("10")},
		},
	}
}

func TestReconcile_ProRataRequired(t *testing.T) {
	snap := twoInvestorSnapshot()
	c := snap.Calls[0]

	assert.True(t, Required(snap.Investors[0], c).Equal(dec("100000")))
	assert.True(t, Required(snap.Investors[1], c).Equal(dec("200000")))
	assert.True(t, RequiredTotal(snap.Investors, c).Equal(dec("300000")))
}

func TestReconcile_OnlyBPaid(t *testing.T) {
	snap := twoInvestorSnapshot()
	snap.Payments = []domain.LPPayment{
		{LPCallID: "call-1", InvestorID: "B", IsPaid: true},
		{LPCallID: "call-1", InvestorID: "A", IsPaid: false},
	}

	m := ReconcileLPMatrix(snap)

	require.Len(t, m.Calls, 1)
	assert.True(t, m.Calls[0].PaidTotal.Equal(dec("200000")))
	assert.True(t, m.Calls[0].Outstanding.Equal(dec("100000")))
	assert.True(t, m.OutstandingTotal.Equal(dec("100000")))

	require.Len(t, m.Investors, 2)
	assert.True(t, m.Investors[0].Outstanding.Equal(dec("100000")))
	assert.True(t, m.Investors[1].Outstanding.IsZero())
}

func TestReconcile_MissingRowReadsAsUnpaid(t *testing.T) {
	snap := twoInvestorSnapshot()

	m := ReconcileLPMatrix(snap)

	assert.True(t, m.Calls[0].PaidTotal.IsZero())
	for _, cell := range m.Calls[0].Cells {
		assert.False(t, cell.IsPaid)
	}
}

func TestReconcile_DeletedCallPaymentsIgnored(t *testing.T) {
	snap := twoInvestorSnapshot()
	snap.Calls = append(snap.Calls, domain.LPCall{LPCallID: "call-2", CallPct: dec("20")})
	snap.Payments = []domain.LPPayment{
		{LPCallID: "call-1", InvestorID: "A", IsPaid: true},
		{LPCallID: "call-2", InvestorID: "A", IsPaid: true},
		{LPCallID: "call-2", InvestorID: "B", IsPaid: true},
	}

	// call-2 deleted; its payment rows linger in the snapshot
	snap.Calls = snap.Calls[:1]
	m := ReconcileLPMatrix(snap)

	require.Len(t, m.Calls, 1)
	assert.Equal(t, "call-1", m.Calls[0].Call.LPCallID)
	assert.True(t, m.RequiredTotal.Equal(dec("300000")))
	assert.True(t, m.PaidTotal.Equal(dec("100000")))
	assert.True(t, m.TotalCallPct.Equal(dec("10")))
}

func TestReconcile_SumOfRequiredMatchesTotal(t *testing.T) {
	snap := domain.LPSnapshot{
		Investors: []domain.Investor{
			{InvestorID: "1", Commitment: dec("333333.33")},
			{InvestorID: "2", Commitment: dec("123456.78")},
			{InvestorID: "3", Commitment: dec("0")},
			{InvestorID: "4", Commitment: dec("9999999.99")},
		},
		Calls: []domain.LPCall{
			{LPCallID: "x", CallPct: dec("7.5")},
			{LPCallID: "y", CallPct: dec("33.333")},
		},
	}

	m := ReconcileLPMatrix(snap)
	for _, rec := range m.Calls {
		sum := dec("0")
		for _, cell := range rec.Cells {
			sum = sum.Add(cell.Required)
		}
		assert.True(t, sum.Equal(rec.RequiredTotal), "call %s: %s != %s", rec.Call.LPCallID, sum, rec.RequiredTotal)
	}
}

func TestReconcile_NoInvestors(t *testing.T) {
	snap := domain.LPSnapshot{
		Calls: []domain.LPCall{{LPCallID: "x", CallPct: dec("50")}},
		Payments: []domain.LPPayment{
			{LPCallID: "x", InvestorID: "gone", IsPaid: true},
		},
	}

	m := ReconcileLPMatrix(snap)

	assert.True(t, m.CommitmentBase.IsZero())
	assert.True(t, m.RequiredTotal.IsZero())
	assert.True(t, m.PaidTotal.IsZero())
	assert.True(t, m.OutstandingTotal.IsZero())
	assert.Empty(t, m.Calls[0].Cells)
}
