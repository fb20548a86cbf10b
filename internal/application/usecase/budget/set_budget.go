// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// SetBudgetUseCase upserts a budget on the backend, keyed by (month, category).
// An Unspecified category sets the overall month budget.
type SetBudgetUseCase struct {
	budgets adapter.BudgetGateway
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgets adapter.BudgetGateway) *SetBudgetUseCase {
	return &SetBudgetUseCase{budgets: budgets}
}

// Execute validates and submits the budget.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input entity.BudgetInput) error {
	if !input.Month.Valid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 01 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if input.Amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if err := uc.budgets.SetBudget(ctx, input); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetWriteFailed,
			"failed to save budget",
			err,
		)
	}
	return nil
}
