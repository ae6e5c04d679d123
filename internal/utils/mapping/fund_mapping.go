package mapping

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/models"
)

// ToModelFund converts a domain Fund to a model Fund
func ToModelFund(d domain.Fund) models.Fund {
	m := models.Fund{
		FundID:          d.FundID,
		Name:            d.Name,
		Manager:         nullString(d.Manager),
		Strategy:        nullString(d.Strategy),
		Commitment:      d.Commitment,
		CurrencyCode:    d.CurrencyCode,
		Status:          string(d.Status),
		InvestmentDate:  d.InvestmentDate,
		GeographicFocus: nullString(d.GeographicFocus),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.VintageYear != 0 {
		vintage := d.VintageYear
		m.VintageYear = &vintage
	}
	return m
}

// ToDomainFund converts a model Fund to a domain Fund
func ToDomainFund(m models.Fund) domain.Fund {
	d := domain.Fund{
		FundID:          m.FundID,
		Name:            m.Name,
		Manager:         derefString(m.Manager),
		Strategy:        derefString(m.Strategy),
		Commitment:      m.Commitment,
		CurrencyCode:    m.CurrencyCode,
		Status:          domain.FundStatus(m.Status),
		InvestmentDate:  m.InvestmentDate,
		GeographicFocus: derefString(m.GeographicFocus),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.VintageYear != nil {
		d.VintageYear = *m.VintageYear
	}
	return d
}

// ToDomainFundSlice converts a slice of model Funds to a slice of domain Funds
func ToDomainFundSlice(ms []models.Fund) []domain.Fund {
	return mapSlice(ms, ToDomainFund)
}

// ToModelInvestor converts a domain Investor to a model Investor
func ToModelInvestor(d domain.Investor) models.Investor {
	return models.Investor{
		InvestorID:  d.InvestorID,
		Name:        d.Name,
		Commitment:  d.Commitment,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestor converts a model Investor to a domain Investor
func ToDomainInvestor(m models.Investor) domain.Investor {
	return domain.Investor{
		InvestorID:  m.InvestorID,
		Name:        m.Name,
		Commitment:  m.Commitment,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestorSlice converts a slice of model Investors to a slice of domain Investors
func ToDomainInvestorSlice(ms []models.Investor) []domain.Investor {
	return mapSlice(ms, ToDomainInvestor)
}
