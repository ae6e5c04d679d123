package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LPCall is a row of the lp_calls table. Revision is bumped on every
// payment write against the call.
type LPCall struct {
	LPCallID string          `db:"lp_call_id"`
	CallDate time.Time       `db:"call_date"`
	CallPct  decimal.Decimal `db:"call_pct"`
	Revision int64           `db:"revision"`
	AuditFields
}

// LPPayment is a row of the lp_payments table.
type LPPayment struct {
	PaymentID  string `db:"payment_id"`
	LPCallID   string `db:"lp_call_id"`
	InvestorID string `db:"investor_id"`
	IsPaid     bool   `db:"is_paid"`
	AuditFields
}
