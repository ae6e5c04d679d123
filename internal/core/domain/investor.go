package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Investor is a limited partner of the master fund. All investor commitments
// share the master fund's single currency.
type Investor struct {
	InvestorID string          `json:"investorID"`
	Name       string          `json:"name"`
	Commitment decimal.Decimal `json:"commitment"`
	AuditFields
}

// Normalize rounds the commitment to its stored precision.
func (i *Investor) Normalize() {
	i.Commitment = RoundAmount(i.Commitment)
}

// Validate checks the registry invariants for an investor record.
func (i Investor) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return apperrors.NewValidationError("investor name is required")
	}
	if i.Commitment.IsNegative() {
		return apperrors.NewValidationError(fmt.Sprintf("investor commitment must not be negative, got %s", i.Commitment))
	}
	if err := checkAmount("investor commitment", i.Commitment); err != nil {
		return err
	}
	return nil
}
