package mapping

import (
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/SscSPs/fund_ledger_app/internal/models"
)

// ToModelLPCall converts a domain LPCall to a model LPCall
func ToModelLPCall(d domain.LPCall) models.LPCall {
	return models.LPCall{
		LPCallID:    d.LPCallID,
		CallDate:    d.CallDate,
		CallPct:     d.CallPct,
		Revision:    d.Revision,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLPCall converts a model LPCall to a domain LPCall
func ToDomainLPCall(m models.LPCall) domain.LPCall {
	return domain.LPCall{
		LPCallID:    m.LPCallID,
		CallDate:    m.CallDate,
		CallPct:     m.CallPct,
		Revision:    m.Revision,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainLPCallSlice(ms []models.LPCall) []domain.LPCall {
	return mapSlice(ms, ToDomainLPCall)
}

// ToModelLPPayment converts a domain LPPayment to a model LPPayment
func ToModelLPPayment(d domain.LPPayment) models.LPPayment {
	return models.LPPayment{
		PaymentID:   d.PaymentID,
		LPCallID:    d.LPCallID,
		InvestorID:  d.InvestorID,
		IsPaid:      d.IsPaid,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLPPayment converts a model LPPayment to a domain LPPayment
func ToDomainLPPayment(m models.LPPayment) domain.LPPayment {
	return domain.LPPayment{
		PaymentID:   m.PaymentID,
		LPCallID:    m.LPCallID,
		InvestorID:  m.InvestorID,
		IsPaid:      m.IsPaid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainLPPaymentSlice(ms []models.LPPayment) []domain.LPPayment {
	return mapSlice(ms, ToDomainLPPayment)
}
