// Package expense contains expense-related use cases. Every write is
// forwarded to the backend; nothing is cached between calls.
package expense

import (
	"errors"
	"strings"

	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// validateInput checks the staged fields. Creates require amount, category and date.
func validateInput(input entity.ExpenseInput, create bool) error {
	if create && input.Amount == nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount is required",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if input.Amount != nil && !input.Amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if create && (input.Category == nil || strings.TrimSpace(*input.Category) == "") {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			"category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}
	if create && (input.Date == nil || input.Date.IsZero()) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseID,
			"expense id is required",
			domainerror.ErrMissingExpenseID,
		)
	}
	return nil
}

// writeFailed maps a backend failure on a write to an ExpenseError.
func writeFailed(message string, err error) error {
	if isNotFound(err) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return domainerror.NewExpenseError(domainerror.ErrCodeExpenseWriteFailed, message, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrBackendNotFound)
}
