package expense

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
)

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenses adapter.ExpenseGateway
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenses adapter.ExpenseGateway) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenses: expenses}
}

// Execute deletes the record with the given ID.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.expenses.DeleteExpense(ctx, id); err != nil {
		return writeFailed("failed to delete expense", err)
	}
	return nil
}
