package expense

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/application/usecase/analysis"
	"github.com/finance-tracker/webapp/internal/domain/entity"
	domainerror "github.com/finance-tracker/webapp/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Filter entity.ExpenseFilter
	// Month narrows the list locally after the backend filter. Nil keeps every record.
	Month *entity.MonthKey
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []entity.ExpenseRecord
	Total    decimal.Decimal
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	expenses adapter.ExpenseGateway
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenses adapter.ExpenseGateway) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenses: expenses}
}

// Execute fetches the records, newest first. Records without a date sort last.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	records, err := uc.expenses.ListExpenses(ctx, input.Filter)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseFetchFailed,
			"failed to load expenses",
			err,
		)
	}

	if input.Month != nil {
		if !input.Month.Valid() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseMonth,
				"month must be between 01 and 12",
				domainerror.ErrInvalidExpenseMonth,
			)
		}
		records = analysis.SelectMonthKey(records, *input.Month)
	}

	sorted := make([]entity.ExpenseRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return &ListExpensesOutput{
		Expenses: sorted,
		Total:    analysis.SumAmounts(sorted),
	}, nil
}
