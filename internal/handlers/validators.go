package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators adds the ledger's custom binding tags to gin's validator.
// It is safe to call more than once; later calls return the first result.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		registerValidatorsErr = registerLedgerValidations(binding.Validator.Engine())
	})
	return registerValidatorsErr
}

func registerLedgerValidations(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", engine)
	}
	if err := v.RegisterValidation("ledger_currency", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCurrency(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register ledger_currency validation: %w", err)
	}
	return nil
}
