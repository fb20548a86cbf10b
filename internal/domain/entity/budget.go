package entity

import (
	"github.com/shopspring/decimal"
)

// BudgetStatus is the tri-state outcome of comparing spend against a limit.
type BudgetStatus string

const (
	BudgetStatusOver   BudgetStatus = "over"
	BudgetStatusUnder  BudgetStatus = "under"
	BudgetStatusNotSet BudgetStatus = "not_set"
)

// DisplayName returns the label shown to the user.
func (s BudgetStatus) DisplayName() string {
	switch s {
	case BudgetStatusOver:
		return "Over Budget"
	case BudgetStatusUnder:
		return "Under Budget"
	default:
		return "Not Set"
	}
}

// CategoryBudget is a spending limit for one month. An Unspecified category
// is the overall month budget, not a budget for uncategorized spend.
type CategoryBudget struct {
	ID       string
	Category Category
	Amount   decimal.Decimal
	Month    MonthKey
}

// IsOverall reports whether the budget is the whole-month limit.
func (b CategoryBudget) IsOverall() bool {
	return b.Category.IsUnspecified()
}

// CategoryBudgetStatus is the derived state of one category budget.
type CategoryBudgetStatus struct {
	Category   Category
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
	Status     BudgetStatus
}

// BudgetAnalysis is the month-level budget picture.
type BudgetAnalysis struct {
	Month           MonthKey
	TotalBudget     decimal.Decimal
	TotalSpent      decimal.Decimal
	TotalRemaining  decimal.Decimal
	TotalPercentage decimal.Decimal
	Status          BudgetStatus
	Categories      []CategoryBudgetStatus
}

// Category returns the status entry for the given category, matched loosely.
func (a BudgetAnalysis) Category(c Category) (CategoryBudgetStatus, bool) {
	for _, s := range a.Categories {
		if s.Category.Matches(c) {
			return s, true
		}
	}
	return CategoryBudgetStatus{}, false
}

// BudgetInput is the payload of a budget upsert, keyed by (Month, Category).
type BudgetInput struct {
	Amount   decimal.Decimal
	Month    MonthKey
	Category Category
}
