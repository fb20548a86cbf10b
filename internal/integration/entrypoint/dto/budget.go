package dto

import (
	"github.com/shopspring/decimal"
)

// SetBudgetRequest represents the request body of a budget upsert.
// A missing or blank category sets the overall month budget.
type SetBudgetRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month" binding:"required"`
	Category *string         `json:"category"`
}
