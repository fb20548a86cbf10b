package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/application/usecase/expense"
	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// ExpenseRequest represents the request body of an expense create or update.
// Omitted fields are left untouched on update.
type ExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Tags        []string         `json:"tags"`
}

// ExpenseResponse represents a single expense record.
type ExpenseResponse struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Date        string   `json:"date,omitempty"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
	Total    float64           `json:"total"`
}

// ResetMonthResponse reports the outcome of a month reset.
type ResetMonthResponse struct {
	Month     string   `json:"month"`
	Deleted   int      `json:"deleted"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids"`
	// Error and Code are set when the reset stopped early.
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// ToExpenseResponse converts an expense record.
func ToExpenseResponse(r entity.ExpenseRecord) ExpenseResponse {
	response := ExpenseResponse{
		ID:          r.ID,
		Amount:      r.Amount.InexactFloat64(),
		Category:    r.Category.Label(),
		Icon:        r.Category.Icon(),
		Description: r.Description,
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if r.HasDate() {
		response.Date = r.Date.Format(entity.ExpenseDateLayout)
	}
	return response
}

// ToExpenseListResponse converts a list output.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(output.Expenses)),
		Count:    len(output.Expenses),
		Total:    output.Total.InexactFloat64(),
	}
	for _, r := range output.Expenses {
		response.Expenses = append(response.Expenses, ToExpenseResponse(r))
	}
	return response
}

// ToResetMonthResponse converts a reset output.
func ToResetMonthResponse(output *expense.ResetMonthOutput) ResetMonthResponse {
	failed := output.FailedIDs
	if failed == nil {
		failed = []string{}
	}
	return ResetMonthResponse{
		Month:     output.Month.String(),
		Deleted:   output.Deleted,
		Failed:    output.Failed,
		FailedIDs: failed,
	}
}
