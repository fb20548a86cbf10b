package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
)

// Analyze merges the configured budgets with the spend per category.
//
// Only category budgets appear in the per-category list; an Unspecified budget
// is the overall month limit and is never matched against uncategorized spend.
// Spend lookups compare labels loosely (trimmed, case-folded). Categories with
// spend but no budget are omitted. The overall status is not_set when
// totalBudget is zero.
func Analyze(
	budgets []entity.CategoryBudget,
	spendByCategory *entity.CategoryTotals,
	totalBudget decimal.Decimal,
	totalSpent decimal.Decimal,
) entity.BudgetAnalysis {
	analysis := entity.BudgetAnalysis{
		TotalBudget:     totalBudget,
		TotalSpent:      totalSpent,
		TotalRemaining:  totalBudget.Sub(totalSpent),
		TotalPercentage: Percentage(totalSpent, totalBudget),
		Status:          OverallStatus(totalBudget, totalSpent),
		Categories:      make([]entity.CategoryBudgetStatus, 0, len(budgets)),
	}

	for _, b := range budgets {
		if b.IsOverall() {
			continue
		}
		spent := decimal.Zero
		if v, ok := spendByCategory.Lookup(b.Category); ok {
			spent = v
		}

		analysis.Categories = append(analysis.Categories, entity.CategoryBudgetStatus{
			Category:   b.Category,
			Budget:     b.Amount,
			Spent:      spent,
			Remaining:  b.Amount.Sub(spent),
			Percentage: Percentage(spent, b.Amount),
			Status:     CategoryStatus(spent, b.Amount),
		})
	}
	return analysis
}

// AnalyzeMonth runs Analyze for one month of records against that month's budgets.
func AnalyzeMonth(budgets []entity.CategoryBudget, records []entity.ExpenseRecord, month entity.MonthKey) entity.BudgetAnalysis {
	monthly := SelectMonthKey(records, month)

	var scoped []entity.CategoryBudget
	for _, b := range budgets {
		if b.Month == month {
			scoped = append(scoped, b)
		}
	}

	analysis := Analyze(scoped, ByCategory(monthly), TotalBudget(scoped), SumAmounts(monthly))
	analysis.Month = month
	return analysis
}

// TotalBudget returns the overall (Unspecified category) budget, or zero when none is set.
// Category budgets never add up into it.
func TotalBudget(budgets []entity.CategoryBudget) decimal.Decimal {
	for _, b := range budgets {
		if b.IsOverall() {
			return b.Amount
		}
	}
	return decimal.Zero
}

// Percentage returns 100*spent/amount, or 0 when amount is not positive.
func Percentage(spent, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(amount)
}

// CategoryStatus is over iff spent exceeds amount.
func CategoryStatus(spent, amount decimal.Decimal) entity.BudgetStatus {
	if spent.GreaterThan(amount) {
		return entity.BudgetStatusOver
	}
	return entity.BudgetStatusUnder
}

// OverallStatus is not_set for a zero total budget, otherwise over iff spent exceeds it.
func OverallStatus(totalBudget, totalSpent decimal.Decimal) entity.BudgetStatus {
	if totalBudget.IsZero() {
		return entity.BudgetStatusNotSet
	}
	if totalSpent.GreaterThan(totalBudget) {
		return entity.BudgetStatusOver
	}
	return entity.BudgetStatusUnder
}
