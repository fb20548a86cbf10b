package expense

import (
	"context"

	"github.com/finance-tracker/webapp/internal/application/adapter"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// CreateExpenseUseCase handles expense creation.
type CreateExpenseUseCase struct {
	expenses adapter.ExpenseGateway
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenses adapter.ExpenseGateway) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenses: expenses}
}

// Execute validates the staged fields and submits them to the backend.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input entity.ExpenseInput) error {
	if err := validateInput(input, true); err != nil {
		return err
	}
	if err := uc.expenses.CreateExpense(ctx, input); err != nil {
		return writeFailed("failed to create expense", err)
	}
	return nil
}
