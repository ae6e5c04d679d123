package mapping

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/models"
)

// ToModelCapitalCall flattens the breakdown into columns.
func ToModelCapitalCall(d domain.CapitalCall) models.CapitalCall {
	return models.CapitalCall{
		CallID:         d.CallID,
		FundID:         d.FundID,
		CallNumber:     d.CallNumber,
		CallDate:       d.CallDate,
		PaymentDate:    d.PaymentDate,
		Amount:         d.Amount,
		Investments:    d.Breakdown.Investments,
		MgmtFee:        d.Breakdown.MgmtFee,
		FundExpenses:   d.Breakdown.FundExpenses,
		GPContribution: d.Breakdown.GPContribution,
		IsFuture:       d.IsFuture,
		Notes:          nullString(d.Notes),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCapitalCall converts a model CapitalCall to a domain CapitalCall
func ToDomainCapitalCall(m models.CapitalCall) domain.CapitalCall {
	return domain.CapitalCall{
		CallID:      m.CallID,
		FundID:      m.FundID,
		CallNumber:  m.CallNumber,
		CallDate:    m.CallDate,
		PaymentDate: m.PaymentDate,
		Amount:      m.Amount,
		Breakdown: domain.CallBreakdown{
			Investments:    m.Investments,
			MgmtFee:        m.MgmtFee,
			FundExpenses:   m.FundExpenses,
			GPContribution: m.GPContribution,
		},
		IsFuture:    m.IsFuture,
		Notes:       derefString(m.Notes),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCapitalCallSlice(ms []models.CapitalCall) []domain.CapitalCall {
	return mapSlice(ms, ToDomainCapitalCall)
}

// ToModelDistribution converts a domain Distribution to a model Distribution
func ToModelDistribution(d domain.Distribution) models.Distribution {
	return models.Distribution{
		DistributionID: d.DistributionID,
		FundID:         d.FundID,
		DistNumber:     d.DistNumber,
		DistDate:       d.DistDate,
		Amount:         d.Amount,
		DistType:       string(d.DistType),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDistribution converts a model Distribution to a domain Distribution
func ToDomainDistribution(m models.Distribution) domain.Distribution {
	return domain.Distribution{
		DistributionID: m.DistributionID,
		FundID:         m.FundID,
		DistNumber:     m.DistNumber,
		DistDate:       m.DistDate,
		Amount:         m.Amount,
		DistType:       domain.DistributionType(m.DistType),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainDistributionSlice(ms []models.Distribution) []domain.Distribution {
	return mapSlice(ms, ToDomainDistribution)
}

// ToModelQuarterlyReport converts a domain QuarterlyReport to a model QuarterlyReport
func ToModelQuarterlyReport(d domain.QuarterlyReport) models.QuarterlyReport {
	return models.QuarterlyReport{
		ReportID:    d.ReportID,
		FundID:      d.FundID,
		Year:        d.Year,
		Quarter:     d.Quarter,
		ReportDate:  d.ReportDate,
		NAV:         d.NAV,
		TVPI:        d.TVPI,
		DPI:         d.DPI,
		RVPI:        d.RVPI,
		IRR:         d.IRR,
		Notes:       nullString(d.Notes),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuarterlyReport converts a model QuarterlyReport to a domain QuarterlyReport
func ToDomainQuarterlyReport(m models.QuarterlyReport) domain.QuarterlyReport {
	return domain.QuarterlyReport{
		ReportID:    m.ReportID,
		FundID:      m.FundID,
		Year:        m.Year,
		Quarter:     m.Quarter,
		ReportDate:  m.ReportDate,
		NAV:         m.NAV,
		TVPI:        m.TVPI,
		DPI:         m.DPI,
		RVPI:        m.RVPI,
		IRR:         m.IRR,
		Notes:       derefString(m.Notes),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainQuarterlyReportSlice(ms []models.QuarterlyReport) []domain.QuarterlyReport {
	return mapSlice(ms, ToDomainQuarterlyReport)
}
