package expense

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// UpdateExpenseInput represents the input for an expense update.
type UpdateExpenseInput struct {
	ID     string
	Fields entity.ExpenseInput
}

// UpdateExpenseUseCase handles expense updates.
type UpdateExpenseUseCase struct {
	expenses adapter.ExpenseGateway
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenses adapter.ExpenseGateway) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenses: expenses}
}

// Execute submits the staged edits for one record.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) error {
	if err := requireID(input.ID); err != nil {
		return err
	}
	if err := validateInput(input.Fields, false); err != nil {
		return err
	}
	if err := uc.expenses.UpdateExpense(ctx, input.ID, input.Fields); err != nil {
		return writeFailed("failed to update expense", err)
	}
	return nil
}
