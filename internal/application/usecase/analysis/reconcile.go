package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/webapp/internal/domain/entity"
	"github.com/finance-tracker/webapp/internal/domain/valueobject"
)

// Discrepancy is a field where the local analysis disagrees with the backend.
type Discrepancy struct {
	// Category is Unspecified for month-level fields.
	Category entity.Category
	Field    string
	Local    string
	Remote   string
}

// BudgetsFromAnalysis recovers the configured budgets behind an analysis:
// one budget per category entry plus the overall budget when it is non-zero.
func BudgetsFromAnalysis(a entity.BudgetAnalysis) []entity.CategoryBudget {
	budgets := make([]entity.CategoryBudget, 0, len(a.Categories)+1)
	if !a.TotalBudget.IsZero() {
		budgets = append(budgets, entity.CategoryBudget{Category: entity.Unspecified, Amount: a.TotalBudget, Month: a.Month})
	}
	for _, c := range a.Categories {
		budgets = append(budgets, entity.CategoryBudget{Category: c.Category, Amount: c.Budget, Month: a.Month})
	}
	return budgets
}

// Reconcile compares a locally computed analysis with the backend's for the same month.
// Amounts must agree to the cent and percentages to 0.01. The overall status is
// compared only when both sides have a total budget, since the backend has no not_set state.
func Reconcile(local, remote entity.BudgetAnalysis, tol valueobject.Tolerance) []Discrepancy {
	var out []Discrepancy

	amount := func(c entity.Category, field string, l, r decimal.Decimal) {
		if !tol.AmountsAgree(l, r) {
			out = append(out, Discrepancy{Category: c, Field: field, Local: l.StringFixed(2), Remote: r.StringFixed(2)})
		}
	}
	percent := func(c entity.Category, field string, l, r decimal.Decimal) {
		if !tol.PercentagesAgree(l, r) {
			out = append(out, Discrepancy{Category: c, Field: field, Local: l.StringFixed(2), Remote: r.StringFixed(2)})
		}
	}
	status := func(c entity.Category, field string, l, r entity.BudgetStatus) {
		if l != r {
			out = append(out, Discrepancy{Category: c, Field: field, Local: string(l), Remote: string(r)})
		}
	}

	amount(entity.Unspecified, "total_budget", local.TotalBudget, remote.TotalBudget)
	amount(entity.Unspecified, "total_spent", local.TotalSpent, remote.TotalSpent)
	amount(entity.Unspecified, "total_remaining", local.TotalRemaining, remote.TotalRemaining)
	if local.Status != entity.BudgetStatusNotSet && remote.Status != entity.BudgetStatusNotSet {
		status(entity.Unspecified, "status", local.Status, remote.Status)
	}

	for _, l := range local.Categories {
		r, ok := remote.Category(l.Category)
		if !ok {
			out = append(out, Discrepancy{Category: l.Category, Field: "category", Local: "present", Remote: "missing"})
			continue
		}
		amount(l.Category, "budget", l.Budget, r.Budget)
		amount(l.Category, "spent", l.Spent, r.Spent)
		amount(l.Category, "remaining", l.Remaining, r.Remaining)
		percent(l.Category, "percentage", l.Percentage, r.Percentage)
		status(l.Category, "status", l.Status, r.Status)
	}
	for _, r := range remote.Categories {
		if _, ok := local.Category(r.Category); !ok {
			out = append(out, Discrepancy{Category: r.Category, Field: "category", Local: "missing", Remote: "present"})
		}
	}
	return out
}
