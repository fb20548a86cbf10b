package expense

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// ResetMonthInput represents the input for a month reset.
type ResetMonthInput struct {
	Month entity.MonthKey
}

// ResetMonthOutput reports how many records were removed.
type ResetMonthOutput struct {
	Month     entity.MonthKey
	Deleted   int
	Failed    int
	FailedIDs []string
}

// ResetMonthUseCase deletes every record of a month, one request at a time.
type ResetMonthUseCase struct {
	expenses adapter.ExpenseGateway
}

// NewResetMonthUseCase creates a new ResetMonthUseCase instance.
func NewResetMonthUseCase(expenses adapter.ExpenseGateway) *ResetMonthUseCase {
	return &ResetMonthUseCase{expenses: expenses}
}

// Execute deletes the month's records sequentially. A failed delete is
// counted and the reset moves on to the next record. When ctx ends midway the
// partial output is returned together with the error.
func (uc *ResetMonthUseCase) Execute(ctx context.Context, input ResetMonthInput) (*ResetMonthOutput, error) {
	if !input.Month.Valid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseMonth,
			"month must be between 01 and 12",
			domainerror.ErrInvalidExpenseMonth,
		)
	}

	records, err := uc.expenses.ListExpenses(ctx, entity.ExpenseFilter{})
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseFetchFailed,
			"failed to load expenses",
			err,
		)
	}

	out := &ResetMonthOutput{Month: input.Month, FailedIDs: []string{}}
	for _, r := range analysis.SelectMonthKey(records, input.Month) {
		if err := ctx.Err(); err != nil {
			slog.Warn("Month reset interrupted",
				"month", input.Month.String(),
				"deleted", out.Deleted,
				"failed", out.Failed,
			)
			return out, domainerror.NewExpenseError(
				domainerror.ErrCodeResetInterrupted,
				"month reset interrupted",
				errors.Join(domainerror.ErrResetInterrupted, err),
			)
		}
		if err := uc.expenses.DeleteExpense(ctx, r.ID); err != nil {
			slog.Warn("Failed to delete expense during month reset",
				"month", input.Month.String(),
				"expense_id", r.ID,
				"error", err,
			)
			out.Failed++
			out.FailedIDs = append(out.FailedIDs, r.ID)
			continue
		}
		out.Deleted++
	}

	slog.Info("Month reset",
		"month", input.Month.String(),
		"deleted", out.Deleted,
		"failed", out.Failed,
	)
	return out, nil
}
