package analysis

import (
	"github.com/shopspring/decimal"
)

// DefaultIncomeMultiplier is the placeholder ratio of income to expense.
const DefaultIncomeMultiplier = 1.3

// IncomeModel estimates a month's income from what was spent in it.
// No real income data exists; every implementation is synthetic.
type IncomeModel interface {
	EstimateIncome(expense decimal.Decimal) decimal.Decimal
	// Synthetic reports whether the estimate is a placeholder rather than observed income.
	Synthetic() bool
}

// MultiplierIncomeModel assumes income is a fixed multiple of expense.
// With the default 1.3 the net flow is always exactly 30% of expense.
type MultiplierIncomeModel struct {
	Multiplier decimal.Decimal
}

// NewMultiplierIncomeModel returns a model for the given multiplier.
// A non-positive multiplier falls back to DefaultIncomeMultiplier.
func NewMultiplierIncomeModel(multiplier float64) MultiplierIncomeModel {
	if multiplier <= 0 {
		multiplier = DefaultIncomeMultiplier
	}
	return MultiplierIncomeModel{Multiplier: decimal.NewFromFloat(multiplier)}
}

// EstimateIncome implements IncomeModel.
func (m MultiplierIncomeModel) EstimateIncome(expense decimal.Decimal) decimal.Decimal {
	return expense.Mul(m.Multiplier)
}

// Synthetic implements IncomeModel.
func (m MultiplierIncomeModel) Synthetic() bool {
	return true
}
