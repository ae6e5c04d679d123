package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxCallPct is the upper bound of a single LP call percentage and, when the
// cap is enforced, of the sum of all LP call percentages.
var MaxCallPct = decimal.NewFromInt(100)

// LPCall is a master-fund level pro-rata call on every investor's commitment.
// Revision is bumped on every payment change and is used for optimistic
// concurrency on batch saves.
type LPCall struct {
	LPCallID string          `json:"lpCallID"`
	CallDate time.Time       `json:"callDate"`
	CallPct  decimal.Decimal `json:"callPct"` // 0..100
	Revision int64           `json:"revision"`
	AuditFields
}

// Normalize rounds the call percentage to its stored precision.
func (c *LPCall) Normalize() {
	c.CallPct = RoundCallPct(c.CallPct)
}

// Validate checks the call date and percentage bounds.
func (c LPCall) Validate() error {
	if c.CallDate.IsZero() {
		return apperrors.NewValidationError("lp call date is required")
	}
	if c.CallPct.IsNegative() || c.CallPct.GreaterThan(MaxCallPct) {
		return apperrors.NewValidationError(fmt.Sprintf("call percentage must be between 0 and 100, got %s", c.CallPct))
	}
	return nil
}

// LPPayment records whether an investor has paid their share of an LP call.
// A missing row is equivalent to IsPaid == false.
type LPPayment struct {
	PaymentID  string `json:"paymentID"`
	LPCallID   string `json:"lpCallID"`
	InvestorID string `json:"investorID"`
	IsPaid     bool   `json:"isPaid"`
	AuditFields
}

// PaymentKey identifies a single cell of the payment matrix.
type PaymentKey struct {
	LPCallID   string
	InvestorID string
}

// Key returns the matrix cell this payment belongs to.
func (p LPPayment) Key() PaymentKey {
	return PaymentKey{LPCallID: p.LPCallID, InvestorID: p.InvestorID}
}

// LPSnapshot is the full state needed to reconcile the payment matrix.
type LPSnapshot struct {
	Investors []Investor  `json:"investors"`
	Calls     []LPCall    `json:"calls"`
	Payments  []LPPayment `json:"payments"`
}

// PaymentCell is a desired cell value in a batch save.
type PaymentCell struct {
	LPCallID   string `json:"lpCallID"`
	InvestorID string `json:"investorID"`
	IsPaid     bool   `json:"isPaid"`
}

// PaymentChange is the result of a single payment status write.
type PaymentChange struct {
	LPCallID   string `json:"lpCallID"`
	InvestorID string `json:"investorID"`
	IsPaid     bool   `json:"isPaid"`
	Changed    bool   `json:"changed"`
	Revision   int64  `json:"revision"`
}

// BatchSaveResult reports what an atomic batch save wrote.
type BatchSaveResult struct {
	Written   int              `json:"written"`
	Unchanged int              `json:"unchanged"`
	Revisions map[string]int64 `json:"revisions"` // lpCallID -> revision after the save
}

// LPCellStatus is a reconciled matrix cell.
type LPCellStatus struct {
	InvestorID string          `json:"investorID"`
	IsPaid     bool            `json:"isPaid"`
	Required   decimal.Decimal `json:"required"`
}

// LPCallReconciliation holds the aggregates for one LP call.
type LPCallReconciliation struct {
	Call          LPCall          `json:"call"`
	RequiredTotal decimal.Decimal `json:"requiredTotal"`
	PaidTotal     decimal.Decimal `json:"paidTotal"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	Cells         []LPCellStatus  `json:"cells"`
}

// InvestorTotals aggregates one investor's position across all LP calls.
type InvestorTotals struct {
	Investor    Investor        `json:"investor"`
	Required    decimal.Decimal `json:"required"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	CalledPct   decimal.Decimal `json:"calledPct"`
}

// LPMatrix is the reconciled investor by call grid.
type LPMatrix struct {
	CommitmentBase   decimal.Decimal        `json:"commitmentBase"`
	TotalCallPct     decimal.Decimal        `json:"totalCallPct"`
	Calls            []LPCallReconciliation `json:"calls"`
	Investors        []InvestorTotals       `json:"investors"`
	RequiredTotal    decimal.Decimal        `json:"requiredTotal"`
	PaidTotal        decimal.Decimal        `json:"paidTotal"`
	OutstandingTotal decimal.Decimal        `json:"outstandingTotal"`
}
