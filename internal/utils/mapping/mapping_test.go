package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFundMapping_OptionalColumns(t *testing.T) {
	f := domain.Fund{
		FundID:       "f1",
		Name:         "Growth I",
		Commitment:   decimal.NewFromInt(1000),
		CurrencyCode: "USD",
		Status:       domain.FundActive,
	}

	m := ToModelFund(f)
	assert.Nil(t, m.Manager)
	assert.Nil(t, m.VintageYear)
	assert.Nil(t, m.GeographicFocus)
	assert.Equal(t, f, ToDomainFund(m))

	f.VintageYear = 2021
	f.Manager = "Acme Partners"
	m = ToModelFund(f)
	assert.Equal(t, 2021, *m.VintageYear)
	assert.Equal(t, "Acme Partners", *m.Manager)
}

func TestCapitalCallMapping_FlattensBreakdown(t *testing.T) {
	call := domain.CapitalCall{
		CallID:     "c1",
		FundID:     "f1",
		CallNumber: 2,
		CallDate:   time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(100),
		Breakdown: domain.CallBreakdown{
			Investments: decimal.NewFromInt(90),
			MgmtFee:     decimal.NewFromInt(10),
		},
	}

	m := ToModelCapitalCall(call)
	assert.True(t, m.Investments.Equal(decimal.NewFromInt(90)))
	assert.True(t, m.MgmtFee.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, m.Notes)
	assert.Equal(t, call, ToDomainCapitalCall(m))
}

func TestSliceMapping_Empty(t *testing.T) {
	assert.NotNil(t, ToDomainLPPaymentSlice(nil))
	assert.Empty(t, ToDomainLPCallSlice(nil))
}
