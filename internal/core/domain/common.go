package domain

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same actor and time.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Touch records an update by userID at now.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// Supported commitment currencies. Amounts are never converted between them.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

var supportedCurrencies = map[string]bool{
	CurrencyUSD: true,
	CurrencyEUR: true,
}

// IsSupportedCurrency reports whether code is an ISO currency known to go-money
// and one of the currencies the ledger accepts.
func IsSupportedCurrency(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return false
	}
	return supportedCurrencies[code]
}
